// Package merge classifies every file of a three-way merge. It is pure: the
// caller supplies the file maps of the split point, the current commit and
// the target commit and applies the resulting plan.
package merge

import (
	"bytes"
	"sort"
)

// Action is what a merge does to one file.
type Action int

const (
	// Adopt writes the target version and stages it.
	Adopt Action = iota + 1
	// Remove stages the file for removal and deletes it.
	Remove
	// Conflict writes synthesized conflict content and stages it.
	Conflict
)

func (a Action) String() string {
	switch a {
	case Adopt:
		return "adopt"
	case Remove:
		return "remove"
	case Conflict:
		return "conflict"
	}
	return "none"
}

// Step is the planned action for one file. Digests are empty when the file
// is absent on that side.
type Step struct {
	Name    string
	Action  Action
	Current string
	Target  string
}

// Plan lists the steps of a merge in name order. Files the merge leaves
// untouched have no step.
type Plan struct {
	Steps []Step
}

// HasConflict reports whether any step is a conflict.
func (p Plan) HasConflict() bool {
	for _, s := range p.Steps {
		if s.Action == Conflict {
			return true
		}
	}
	return false
}

// Classify builds the plan for the union of names in split, current and
// target. Each map goes from file name to blob digest.
func Classify(split, current, target map[string]string) Plan {
	names := map[string]struct{}{}
	for _, m := range []map[string]string{split, current, target} {
		for n := range m {
			names[n] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	var plan Plan
	for _, name := range sorted {
		s, c, t := split[name], current[name], target[name]
		sameTS := t == s
		sameCS := c == s
		sameCT := c == t

		switch {
		// changed only in target: take target (add, modify or delete)
		case !sameTS && sameCS:
			if t == "" {
				plan.Steps = append(plan.Steps, Step{Name: name, Action: Remove, Current: c})
			} else {
				plan.Steps = append(plan.Steps, Step{Name: name, Action: Adopt, Current: c, Target: t})
			}

		// changed only in current: keep
		case !sameCS && sameTS:
			continue

		// changed in both, differently
		case !sameCS && !sameCT:
			plan.Steps = append(plan.Steps, Step{Name: name, Action: Conflict, Current: c, Target: t})

		default:
			// identical on both sides, or untouched
		}
	}
	return plan
}

// ConflictContent synthesizes the content written for a conflicted file.
// An absent side contributes nothing.
func ConflictContent(current, target []byte) []byte {
	var b bytes.Buffer
	b.WriteString("<<<<<<< HEAD\n")
	b.Write(current)
	b.WriteString("=======\n")
	b.Write(target)
	b.WriteString(">>>>>>>\n")
	return b.Bytes()
}
