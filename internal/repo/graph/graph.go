// Package graph answers ancestry questions over the commit history. The
// graph is a derived view: it walks parent links on demand and caches what
// it has seen.
package graph

import (
	"fmt"
	"maps"
)

// ParentFunc returns the parent IDs of a commit.
type ParentFunc func(id string) ([]string, error)

// Graph walks commit parents iteratively, so history depth never grows the
// call stack.
type Graph struct {
	parents   ParentFunc
	parentMap map[string][]string
	ancestors map[string]*walk
}

// walk is a memoized ancestor set together with its breadth-first discovery
// order.
type walk struct {
	set   map[string]struct{}
	order []string
}

// New returns a Graph reading parents through fn.
func New(fn ParentFunc) *Graph {
	return &Graph{
		parents:   fn,
		parentMap: make(map[string][]string),
		ancestors: make(map[string]*walk),
	}
}

// Parents returns the cached parent list of id.
func (g *Graph) Parents(id string) ([]string, error) {
	if p, ok := g.parentMap[id]; ok {
		return p, nil
	}
	p, err := g.parents(id)
	if err != nil {
		return nil, fmt.Errorf("read parents of %q: %w", id, err)
	}
	g.parentMap[id] = p
	return p, nil
}

func (g *Graph) walk(id string) (*walk, error) {
	if w, ok := g.ancestors[id]; ok {
		return w, nil
	}

	w := &walk{set: make(map[string]struct{})}
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		parents, err := g.Parents(cur)
		if err != nil {
			return nil, err
		}
		for _, p := range parents {
			if p == id {
				continue
			}
			if _, seen := w.set[p]; seen {
				continue
			}
			w.set[p] = struct{}{}
			w.order = append(w.order, p)
			queue = append(queue, p)
		}
	}

	g.ancestors[id] = w
	return w, nil
}

// Ancestors returns every commit reachable from id through parent links,
// excluding id itself. The result is a copy the caller may modify.
func (g *Graph) Ancestors(id string) (map[string]struct{}, error) {
	w, err := g.walk(id)
	if err != nil {
		return nil, err
	}
	return maps.Clone(w.set), nil
}

// IsAncestor reports whether a is a proper ancestor of b.
func (g *Graph) IsAncestor(a, b string) (bool, error) {
	w, err := g.walk(b)
	if err != nil {
		return false, err
	}
	_, ok := w.set[a]
	return ok, nil
}

// SplitPoint returns the latest common ancestor of a and b: among the common
// ancestors that are not themselves ancestors of another common ancestor, the
// first discovered breadth-first from a. On criss-cross histories several
// candidates survive and the choice is by discovery order only.
func (g *Graph) SplitPoint(a, b string) (string, error) {
	wa, err := g.walk(a)
	if err != nil {
		return "", err
	}
	wb, err := g.walk(b)
	if err != nil {
		return "", err
	}

	var common []string
	for _, id := range wa.order {
		if _, ok := wb.set[id]; ok {
			common = append(common, id)
		}
	}
	if len(common) == 0 {
		return "", fmt.Errorf("no common ancestor of %q and %q", a, b)
	}

	// Mark everything below each surviving candidate. A marked node already
	// had its own ancestors walked, so the walk stops there.
	removed := make(map[string]bool)
	for _, c := range common {
		if removed[c] {
			continue
		}
		stack, err := g.Parents(c)
		if err != nil {
			return "", err
		}
		stack = append([]string(nil), stack...)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if removed[n] {
				continue
			}
			removed[n] = true
			parents, err := g.Parents(n)
			if err != nil {
				return "", err
			}
			stack = append(stack, parents...)
		}
	}

	for _, c := range common {
		if !removed[c] {
			return c, nil
		}
	}
	return "", fmt.Errorf("no split point for %q and %q", a, b)
}
