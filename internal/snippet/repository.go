package snippet

import "sort"

// Repository is an immutable, pre-sorted snippet list. Matching walks the
// snippets in order and takes the first success, so the sort decides which
// of two overlapping triggers wins.
type Repository struct {
	snippets []Snippet
}

// NewRepository copies and sorts the given snippets by specificity:
// higher priority first, then longer trigger first, then trigger text.
// The length ordering guarantees a trigger is never shadowed by a shorter
// trigger that matches its tail, so "=>" always beats ">".
func NewRepository(snippets []Snippet) *Repository {
	sorted := make([]Snippet, len(snippets))
	copy(sorted, snippets)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if len(a.Trigger) != len(b.Trigger) {
			return len(a.Trigger) > len(b.Trigger)
		}
		return a.Trigger < b.Trigger
	})
	return &Repository{snippets: sorted}
}

// Load parses definitions and builds the repository in one step. Malformed
// entries are skipped; their errors are returned alongside the repository.
func Load(src string) (*Repository, []error) {
	snippets, errs := ParseDefinitions(src)
	return NewRepository(snippets), errs
}

// Snippets returns the sorted snippet list. Callers must not modify it.
func (r *Repository) Snippets() []Snippet {
	if r == nil {
		return nil
	}
	return r.snippets
}

// Len returns the number of snippets.
func (r *Repository) Len() int {
	if r == nil {
		return 0
	}
	return len(r.snippets)
}
