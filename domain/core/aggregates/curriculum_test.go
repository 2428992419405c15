package aggregates_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learngraph/domain/core/aggregates"
	"learngraph/domain/core/entities"
	"learngraph/domain/core/valueobjects"
	pkgerrors "learngraph/pkg/errors"
)

// makeInput builds a minimal valid concept record for fixtures
func makeInput(id string, prereqs ...string) entities.ConceptInput {
	return entities.ConceptInput{
		ID:            id,
		Name:          id,
		Layer:         valueobjects.LayerCore,
		Domain:        valueobjects.DomainAlgebra,
		Definition:    "definition of " + id,
		Visualization: valueobjects.VisualizationSymbolic,
		Prerequisites: prereqs,
		Metadata:      entities.MetadataInput{Difficulty: 2},
	}
}

func mustID(t *testing.T, raw string) valueobjects.ConceptID {
	t.Helper()
	id, err := valueobjects.NewConceptID(raw)
	require.NoError(t, err)
	return id
}

// buildCurriculum registers the records and freezes the aggregate
func buildCurriculum(t *testing.T, inputs ...entities.ConceptInput) *aggregates.Curriculum {
	t.Helper()
	curriculum := aggregates.NewCurriculum("test")
	for _, input := range inputs {
		require.NoError(t, curriculum.Register(input))
	}
	curriculum.Freeze()
	return curriculum
}

func TestRegisterRejectsInvalidRecord(t *testing.T) {
	curriculum := aggregates.NewCurriculum("test")

	err := curriculum.Register(entities.ConceptInput{ID: "Bad ID"})
	require.Error(t, err)

	var validationErrs *pkgerrors.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, 0, curriculum.ConceptCount())
}

func TestRegisterOverwritesKeepingOrder(t *testing.T) {
	curriculum := aggregates.NewCurriculum("test")
	require.NoError(t, curriculum.Register(makeInput("fractions")))
	require.NoError(t, curriculum.Register(makeInput("decimals")))

	replacement := makeInput("fractions")
	replacement.Name = "Fractions, revised"
	require.NoError(t, curriculum.Register(replacement))

	all := curriculum.All()
	require.Len(t, all, 2)
	assert.Equal(t, "fractions", all[0].ID().String())
	assert.Equal(t, "Fractions, revised", all[0].Name())
	assert.Equal(t, "decimals", all[1].ID().String())
}

func TestRegisterAfterFreezeFails(t *testing.T) {
	curriculum := buildCurriculum(t, makeInput("fractions"))

	err := curriculum.Register(makeInput("decimals"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrCurriculumFrozen)
}

func TestGetReturnsNotFoundSentinel(t *testing.T) {
	curriculum := buildCurriculum(t, makeInput("fractions"))

	_, ok := curriculum.Get(mustID(t, "ghost-concept"))
	assert.False(t, ok)

	concept, ok := curriculum.Get(mustID(t, "fractions"))
	require.True(t, ok)
	assert.Equal(t, "fractions", concept.ID().String())
}

func TestByLayerFiltersExactly(t *testing.T) {
	foundation := makeInput("whole-numbers")
	foundation.Layer = valueobjects.LayerFoundation

	curriculum := buildCurriculum(t, foundation, makeInput("fractions"))

	byLayer := curriculum.ByLayer(valueobjects.LayerFoundation)
	require.Len(t, byLayer, 1)
	assert.Equal(t, "whole-numbers", byLayer[0].ID().String())
	assert.Empty(t, curriculum.ByLayer(valueobjects.LayerFrontier))
}

func TestEdgeIndexConsistency(t *testing.T) {
	curriculum := buildCurriculum(t,
		makeInput("a"),
		makeInput("b", "a"),
		makeInput("c", "a", "b"),
	)

	// For every declared prerequisite edge, the dependent appears in the
	// prerequisite's reverse adjacency
	for _, concept := range curriculum.All() {
		for _, prereq := range concept.Prerequisites() {
			assert.Contains(t, curriculum.Dependents(prereq), concept.ID())
		}
	}

	assert.Equal(t, []valueobjects.ConceptID{mustID(t, "b"), mustID(t, "c")}, curriculum.Dependents(mustID(t, "a")))
	assert.Empty(t, curriculum.Dependents(mustID(t, "ghost-concept")))
	assert.Equal(t, 3, curriculum.EdgeCount())
}

func TestEnablesOnlyAddsMissingEdges(t *testing.T) {
	// b declares a as prerequisite; a's enables hint for b is redundant,
	// its hint for c adds an edge c never declared
	a := makeInput("a")
	a.Enables = []string{"b", "c"}

	curriculum := buildCurriculum(t, a, makeInput("b", "a"), makeInput("c"))

	assert.Equal(t, []valueobjects.ConceptID{mustID(t, "b"), mustID(t, "c")}, curriculum.Dependents(mustID(t, "a")))
	assert.Equal(t, 2, curriculum.EdgeCount())
}

func TestValidateReportsDanglingReferences(t *testing.T) {
	curriculum := buildCurriculum(t, makeInput("b", "ghost-concept"))

	err := curriculum.Validate()
	require.Error(t, err)

	var validationErrs *pkgerrors.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Len(t, validationErrs.Errors, 1)
	assert.Equal(t, "DANGLING_PREREQUISITE", validationErrs.Errors[0].Code)
	assert.Equal(t, "ghost-concept", validationErrs.Errors[0].Details["missing"])
}

func TestValidateReportsCycles(t *testing.T) {
	// a -> b -> c -> a is authorable because each record is locally valid
	curriculum := buildCurriculum(t,
		makeInput("a", "c"),
		makeInput("b", "a"),
		makeInput("c", "b"),
	)

	err := curriculum.Validate()
	require.Error(t, err)

	var validationErrs *pkgerrors.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	foundCycle := false
	for _, domainErr := range validationErrs.Errors {
		if domainErr.Code == "CYCLIC_DEPENDENCY" {
			foundCycle = true
		}
	}
	assert.True(t, foundCycle)
}

func TestValidatePassesOnCleanDAG(t *testing.T) {
	curriculum := buildCurriculum(t,
		makeInput("a"),
		makeInput("b", "a"),
		makeInput("c", "b"),
	)
	assert.NoError(t, curriculum.Validate())
}

func TestDomainEventsAreRecorded(t *testing.T) {
	curriculum := aggregates.NewCurriculum("test")
	require.NoError(t, curriculum.Register(makeInput("a")))
	curriculum.Freeze()

	events := curriculum.GetUncommittedEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "curriculum.concept_registered", events[0].GetEventType())
	assert.Equal(t, "curriculum.published", events[1].GetEventType())

	curriculum.MarkEventsAsCommitted()
	assert.Empty(t, curriculum.GetUncommittedEvents())
}
