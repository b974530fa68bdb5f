package ir

// RawSection is a named section call with a nested body, e.g. `browser {}`.
type RawSection struct {
	name string
	body []Node
}

// SectionCall returns a section named name whose body is assembled by fn.
// A nil fn yields an empty body.
func SectionCall(name string, fn func(b *ListBuilder)) RawSection {
	return RawSection{name: name, body: Build(fn)}
}

// Kind implements Node.
func (s RawSection) Kind() Kind { return KindRawSection }

// Children implements Node.
func (s RawSection) Children() []Node { return cloneNodes(s.body) }

// Name returns the section identifier.
func (s RawSection) Name() string { return s.name }

// Body returns a copy of the nested nodes.
func (s RawSection) Body() []Node { return cloneNodes(s.body) }
