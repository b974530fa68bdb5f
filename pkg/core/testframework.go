package core

import "strings"

// TestFramework identifies the test runner a target is configured with.
type TestFramework int

// Test frameworks.
const (
	TestFrameworkNone TestFramework = iota
	TestFrameworkJUnit4
	TestFrameworkJUnit5
	TestFrameworkTestNG
	TestFrameworkJS
	TestFrameworkCommon
)

// String returns the string representation of the test framework.
func (f TestFramework) String() string {
	switch f {
	case TestFrameworkNone:
		return "none"
	case TestFrameworkJUnit4:
		return "junit4"
	case TestFrameworkJUnit5:
		return "junit5"
	case TestFrameworkTestNG:
		return "testng"
	case TestFrameworkJS:
		return "js"
	case TestFrameworkCommon:
		return "common"
	default:
		return "unknown"
	}
}

// Text returns the display label shown to users.
func (f TestFramework) Text() string {
	switch f {
	case TestFrameworkJUnit4:
		return "JUnit 4"
	case TestFrameworkJUnit5:
		return "JUnit 5"
	case TestFrameworkTestNG:
		return "TestNG"
	case TestFrameworkJS:
		return "JS Test"
	case TestFrameworkCommon:
		return "Common Test"
	default:
		return "None"
	}
}

// Dependencies returns the test artifacts the framework requires.
func (f TestFramework) Dependencies() []string {
	switch f {
	case TestFrameworkJUnit4:
		return []string{"kotlin-test-junit"}
	case TestFrameworkJUnit5:
		return []string{"kotlin-test-junit5"}
	case TestFrameworkTestNG:
		return []string{"kotlin-test-testng"}
	case TestFrameworkJS:
		return []string{"kotlin-test-js"}
	case TestFrameworkCommon:
		return []string{"kotlin-test-common", "kotlin-test-annotations-common"}
	default:
		return nil
	}
}

// ParseTestFramework converts a string to a TestFramework value.
// Returns TestFrameworkNone and false if the name is not recognized.
func ParseTestFramework(s string) (TestFramework, bool) {
	switch strings.ToLower(s) {
	case "none":
		return TestFrameworkNone, true
	case "junit4":
		return TestFrameworkJUnit4, true
	case "junit5":
		return TestFrameworkJUnit5, true
	case "testng":
		return TestFrameworkTestNG, true
	case "js":
		return TestFrameworkJS, true
	case "common":
		return TestFrameworkCommon, true
	default:
		return TestFrameworkNone, false
	}
}
