package ir

// WalkFunc is called for every visited node with its depth in the forest.
// Returning false skips the node's children.
type WalkFunc func(n Node, depth int) bool

// Walk visits the forest depth-first in emission order.
func Walk(forest []Node, fn WalkFunc) {
	for _, n := range forest {
		walk(n, 0, fn)
	}
}

func walk(n Node, depth int, fn WalkFunc) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children() {
		walk(child, depth+1, fn)
	}
}

// Collect returns every node of type T in the forest, in walk order.
func Collect[T Node](forest []Node) []T {
	var out []T
	Walk(forest, func(n Node, _ int) bool {
		if v, ok := n.(T); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}
