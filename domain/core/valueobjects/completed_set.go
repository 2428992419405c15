package valueobjects

// CompletedSet is the caller-owned collection of concept ids a learner has
// finished. The engine never retains one across calls.
type CompletedSet map[ConceptID]struct{}

// NewCompletedSet creates a completed set from concept ids
func NewCompletedSet(ids ...ConceptID) CompletedSet {
	set := make(CompletedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// CompletedSetFromStrings builds a completed set from raw id tokens,
// silently dropping malformed entries. Malformed tokens cannot match any
// registered concept, so dropping them keeps read-path semantics lenient.
func CompletedSetFromStrings(raw []string) CompletedSet {
	set := make(CompletedSet, len(raw))
	for _, s := range raw {
		if id, err := NewConceptID(s); err == nil {
			set[id] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the given id
func (s CompletedSet) Has(id ConceptID) bool {
	_, ok := s[id]
	return ok
}

// Add marks a concept as completed
func (s CompletedSet) Add(id ConceptID) {
	s[id] = struct{}{}
}

// Len returns the number of completed concepts
func (s CompletedSet) Len() int {
	return len(s)
}
