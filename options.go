package ilex

import "fmt"

const defaultMaxDepth = 1000

type options struct {
	maxDepth int
}

// Option configures Parse and ParseTrimmed.
type Option func(*options) error

// MaxDepth returns an Option that sets the maximum element nesting
// depth accepted by the tree builder. The builder's recursion depth
// equals the nesting depth of the input, so the limit bounds stack
// growth on deeply nested documents.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("ilex: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
