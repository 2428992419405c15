package aggregates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learngraph/domain/core/aggregates"
	"learngraph/domain/core/valueobjects"
)

func ids(t *testing.T, raw ...string) []valueobjects.ConceptID {
	t.Helper()
	out := make([]valueobjects.ConceptID, len(raw))
	for i, r := range raw {
		out[i] = mustID(t, r)
	}
	return out
}

// linearCurriculum is a -> b -> c (arrows point from prerequisite to dependent)
func linearCurriculum(t *testing.T) *aggregates.Curriculum {
	t.Helper()
	return buildCurriculum(t,
		makeInput("a"),
		makeInput("b", "a"),
		makeInput("c", "b"),
	)
}

// diamondCurriculum is a -> {b-one, b-two} -> d
func diamondCurriculum(t *testing.T) *aggregates.Curriculum {
	t.Helper()
	return buildCurriculum(t,
		makeInput("a"),
		makeInput("b-one", "a"),
		makeInput("b-two", "a"),
		makeInput("d", "b-one", "b-two"),
	)
}

func TestPrerequisiteChainLinear(t *testing.T) {
	curriculum := linearCurriculum(t)

	assert.Equal(t, ids(t, "b", "a"), curriculum.PrerequisiteChain(mustID(t, "c")))
	assert.Equal(t, ids(t, "a"), curriculum.PrerequisiteChain(mustID(t, "b")))
	assert.Empty(t, curriculum.PrerequisiteChain(mustID(t, "a")))
}

func TestPrerequisiteChainDiamondVisitsSharedAncestorOnce(t *testing.T) {
	curriculum := diamondCurriculum(t)

	chain := curriculum.PrerequisiteChain(mustID(t, "d"))
	assert.Equal(t, ids(t, "b-one", "a", "b-two"), chain)
}

func TestPrerequisiteChainExcludesStartOnCycle(t *testing.T) {
	curriculum := buildCurriculum(t,
		makeInput("a", "c"),
		makeInput("b", "a"),
		makeInput("c", "b"),
	)

	chain := curriculum.PrerequisiteChain(mustID(t, "a"))
	assert.Equal(t, ids(t, "c", "b"), chain)
}

func TestPrerequisiteChainReportsDanglingWithoutExpanding(t *testing.T) {
	curriculum := buildCurriculum(t, makeInput("b", "ghost-concept"))

	chain := curriculum.PrerequisiteChain(mustID(t, "b"))
	assert.Equal(t, ids(t, "ghost-concept"), chain)
}

func TestDependentClosure(t *testing.T) {
	curriculum := diamondCurriculum(t)

	closure := curriculum.DependentClosure(mustID(t, "a"))
	assert.Equal(t, ids(t, "b-one", "d", "b-two"), closure)
	assert.Empty(t, curriculum.DependentClosure(mustID(t, "d")))
}

func TestDepthLinear(t *testing.T) {
	curriculum := linearCurriculum(t)

	assert.Equal(t, 0, curriculum.Depth(mustID(t, "a")))
	assert.Equal(t, 1, curriculum.Depth(mustID(t, "b")))
	assert.Equal(t, 2, curriculum.Depth(mustID(t, "c")))
}

func TestDepthDiamondFollowsLongestPath(t *testing.T) {
	curriculum := diamondCurriculum(t)

	// Shared ancestors are not cycles: both branches through a count
	assert.Equal(t, 2, curriculum.Depth(mustID(t, "d")))
}

func TestDepthTruncatesCycles(t *testing.T) {
	curriculum := buildCurriculum(t,
		makeInput("a", "c"),
		makeInput("b", "a"),
		makeInput("c", "b"),
	)

	// Each node still gets a finite depth, counting the acyclic remainder
	assert.Equal(t, 2, curriculum.Depth(mustID(t, "a")))
	assert.Equal(t, 2, curriculum.Depth(mustID(t, "b")))
	assert.Equal(t, 2, curriculum.Depth(mustID(t, "c")))
}

func TestExtractSubgraphBounded(t *testing.T) {
	curriculum := buildCurriculum(t,
		makeInput("a"),
		makeInput("b", "a"),
		makeInput("c", "b"),
		makeInput("d", "c"),
	)

	sub := curriculum.ExtractSubgraph(mustID(t, "c"), 1)
	require.Equal(t, mustID(t, "c"), sub.Center)
	assert.Equal(t, ids(t, "c", "b", "d"), sub.Nodes)
	assert.ElementsMatch(t, []aggregates.Edge{
		{From: mustID(t, "b"), To: mustID(t, "c")},
		{From: mustID(t, "c"), To: mustID(t, "d")},
	}, sub.Edges)
}

func TestExtractSubgraphUnknownCenterIsEmpty(t *testing.T) {
	curriculum := linearCurriculum(t)

	sub := curriculum.ExtractSubgraph(mustID(t, "ghost-concept"), 3)
	assert.Empty(t, sub.Nodes)
	assert.Empty(t, sub.Edges)
}

func TestExtractSubgraphSkipsDanglingNodes(t *testing.T) {
	curriculum := buildCurriculum(t, makeInput("b", "ghost-concept"))

	sub := curriculum.ExtractSubgraph(mustID(t, "b"), 2)
	assert.Equal(t, ids(t, "b"), sub.Nodes)
	assert.Empty(t, sub.Edges)
}
