package aggregates

import (
	"learngraph/domain/core/valueobjects"
)

// Direction selects which way a traversal follows the dependency edges
type Direction int

const (
	// DirectionPrerequisites walks from a concept toward its ancestors
	DirectionPrerequisites Direction = iota
	// DirectionDependents walks from a concept toward what it unlocks
	DirectionDependents
)

// Edge is a directed prerequisite -> dependent pair, as exposed to
// visualization consumers
type Edge struct {
	From valueobjects.ConceptID `json:"from"`
	To   valueobjects.ConceptID `json:"to"`
}

// Subgraph is the node/edge pair returned by bounded expansion around a
// concept. Nodes are deduplicated by id.
type Subgraph struct {
	Center valueobjects.ConceptID
	Nodes  []valueobjects.ConceptID
	Edges  []Edge
}

// neighbors returns a concept's direct neighbors in the given direction.
// Unknown ids have no neighbors.
func (c *Curriculum) neighbors(id valueobjects.ConceptID, dir Direction) []valueobjects.ConceptID {
	if dir == DirectionPrerequisites {
		return c.Prerequisites(id)
	}
	return c.Dependents(id)
}

// walk is the shared depth-first traversal behind chain computation,
// subgraph extraction and reachability checks. It starts from the direct
// neighbors of start, visits each reachable id exactly once in
// first-discovery order, and never re-expands a visited node, so it
// terminates even on a corrupted cyclic graph. A maxDepth < 0 means
// unbounded; otherwise expansion stops maxDepth hops from start.
func (c *Curriculum) walk(start valueobjects.ConceptID, dir Direction, maxDepth int, visit func(id valueobjects.ConceptID, depth int)) {
	visited := map[valueobjects.ConceptID]bool{start: true}

	var expand func(id valueobjects.ConceptID, depth int)
	expand = func(id valueobjects.ConceptID, depth int) {
		if maxDepth >= 0 && depth > maxDepth {
			return
		}
		for _, next := range c.neighbors(id, dir) {
			if visited[next] {
				continue
			}
			visited[next] = true
			visit(next, depth)
			expand(next, depth+1)
		}
	}

	expand(start, 1)
}

// PrerequisiteChain returns the full transitive ancestor set of a concept
// in first-discovery order. The starting concept itself is never part of
// its own chain. Expansion stops at ids that do not resolve to a
// registered concept; the dangling id is still reported as an ancestor.
func (c *Curriculum) PrerequisiteChain(id valueobjects.ConceptID) []valueobjects.ConceptID {
	chain := []valueobjects.ConceptID{}
	c.walk(id, DirectionPrerequisites, -1, func(ancestor valueobjects.ConceptID, _ int) {
		chain = append(chain, ancestor)
	})
	return chain
}

// DependentClosure returns every concept that transitively requires the
// given one, in first-discovery order
func (c *Curriculum) DependentClosure(id valueobjects.ConceptID) []valueobjects.ConceptID {
	closure := []valueobjects.ConceptID{}
	c.walk(id, DirectionDependents, -1, func(dependent valueobjects.ConceptID, _ int) {
		closure = append(closure, dependent)
	})
	return closure
}

// Depth returns the longest prerequisite chain length ending at the
// concept: 0 for a concept with no prerequisites, otherwise one more than
// the deepest direct prerequisite. The cycle guard tracks only the current
// recursion path, so a diamond converging on a shared ancestor is counted
// normally and not mistaken for a cycle.
func (c *Curriculum) Depth(id valueobjects.ConceptID) int {
	return c.depth(id, map[valueobjects.ConceptID]bool{id: true})
}

func (c *Curriculum) depth(id valueobjects.ConceptID, onPath map[valueobjects.ConceptID]bool) int {
	deepest := 0
	for _, prereq := range c.Prerequisites(id) {
		if onPath[prereq] {
			// Cycle: truncate this branch
			continue
		}
		onPath[prereq] = true
		if d := c.depth(prereq, onPath) + 1; d > deepest {
			deepest = d
		}
		delete(onPath, prereq)
	}
	return deepest
}

// ExtractSubgraph expands up to maxDepth hops in both directions around a
// concept and returns the deduplicated node set with the edges connecting
// it, for visualization. An unknown center yields an empty subgraph.
func (c *Curriculum) ExtractSubgraph(id valueobjects.ConceptID, maxDepth int) Subgraph {
	sub := Subgraph{Center: id, Nodes: []valueobjects.ConceptID{}, Edges: []Edge{}}
	if _, ok := c.concepts[id]; !ok {
		return sub
	}

	included := map[valueobjects.ConceptID]bool{id: true}
	sub.Nodes = append(sub.Nodes, id)

	c.walk(id, DirectionPrerequisites, maxDepth, func(ancestor valueobjects.ConceptID, _ int) {
		if _, registered := c.concepts[ancestor]; !registered {
			return
		}
		if !included[ancestor] {
			included[ancestor] = true
			sub.Nodes = append(sub.Nodes, ancestor)
		}
	})
	c.walk(id, DirectionDependents, maxDepth, func(dependent valueobjects.ConceptID, _ int) {
		if _, registered := c.concepts[dependent]; !registered {
			return
		}
		if !included[dependent] {
			included[dependent] = true
			sub.Nodes = append(sub.Nodes, dependent)
		}
	})

	// Keep only edges whose endpoints both made it into the node set
	for _, node := range sub.Nodes {
		for _, dependent := range c.Dependents(node) {
			if included[dependent] {
				sub.Edges = append(sub.Edges, Edge{From: node, To: dependent})
			}
		}
	}

	return sub
}
