// Package relpath handles dotted relation paths like "countries__states__cities".
package relpath

import (
	"errors"
	"fmt"
	"strings"
)

// Sep separates the segments of a relation path.
const Sep = "__"

// ErrInvalidPath is returned for paths with empty segments
// (leading, trailing or doubled separators, or an empty path).
var ErrInvalidPath = errors.New("invalid relation path")

// Hierarchy groups relation paths by their first segment.
// Roots are kept in first-occurrence order so traversal is deterministic.
type Hierarchy struct {
	roots  []string
	nested map[string][]string
}

// Parse splits every path on Sep and groups them by first segment. The value
// of each group is the list of remaining joined segments; a single-segment
// path contributes no descendant entry.
func Parse(paths []string) (*Hierarchy, error) {
	h := &Hierarchy{nested: make(map[string][]string)}
	for _, path := range paths {
		segments := strings.Split(path, Sep)
		for _, segment := range segments {
			if segment == "" {
				return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
			}
		}
		root := segments[0]
		if _, seen := h.nested[root]; !seen {
			h.roots = append(h.roots, root)
			h.nested[root] = nil
		}
		if len(segments) > 1 {
			h.nested[root] = append(h.nested[root], strings.Join(segments[1:], Sep))
		}
	}
	return h, nil
}

// Roots returns the first-level relation names in first-occurrence order.
func (h *Hierarchy) Roots() []string {
	return h.roots
}

// Nested returns the descendant paths below a first-level relation.
func (h *Hierarchy) Nested(root string) []string {
	return h.nested[root]
}

// Len returns the number of first-level relations.
func (h *Hierarchy) Len() int {
	return len(h.roots)
}
