package validators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learngraph/domain/core/entities"
	"learngraph/domain/core/validators"
	"learngraph/domain/core/valueobjects"
	pkgerrors "learngraph/pkg/errors"
)

func validInput() entities.ConceptInput {
	return entities.ConceptInput{
		ID:            "linear-equations",
		Name:          "Linear Equations",
		Layer:         valueobjects.LayerCore,
		Domain:        valueobjects.DomainAlgebra,
		Definition:    "Solving first-degree equations in one variable.",
		Visualization: valueobjects.VisualizationSymbolic,
		Prerequisites: []string{"variables-and-expressions"},
		Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "1 hour"},
	}
}

func TestValidateInputAcceptsValidRecord(t *testing.T) {
	v := validators.NewConceptValidator()
	assert.NoError(t, v.ValidateInput(validInput()))
}

func TestValidateInputReportsEveryViolation(t *testing.T) {
	v := validators.NewConceptValidator()

	input := entities.ConceptInput{
		// id, name, definition missing; bad enums; bad prereq token; difficulty out of range
		Layer:         valueobjects.Layer("mezzanine"),
		Domain:        valueobjects.Domain("alchemy"),
		Visualization: valueobjects.Visualization("hologram"),
		Prerequisites: []string{"Not A Token"},
		Metadata:      entities.MetadataInput{Difficulty: 9},
	}

	err := v.ValidateInput(input)
	require.Error(t, err)

	var validationErrs *pkgerrors.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	fields := validationErrs.ToMap()
	for _, field := range []string{"id", "name", "definition", "layer", "domain", "visualization", "prerequisites", "difficulty"} {
		assert.NotEmpty(t, fields[field], "expected a violation for %s", field)
	}
}

func TestValidateInputRejectsMalformedID(t *testing.T) {
	v := validators.NewConceptValidator()

	input := validInput()
	input.ID = "Linear Equations"

	err := v.ValidateInput(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lowercase")
}

func TestValidateInputRejectsSelfPrerequisite(t *testing.T) {
	v := validators.NewConceptValidator()

	input := validInput()
	input.Prerequisites = append(input.Prerequisites, input.ID)

	err := v.ValidateInput(input)
	require.Error(t, err)

	var validationErrs *pkgerrors.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.NotEmpty(t, validationErrs.ToMap()["prerequisites"])
}

func TestValidateInputChecksEnablesTokens(t *testing.T) {
	v := validators.NewConceptValidator()

	input := validInput()
	input.Enables = []string{"quadratic-equations", "??"}

	err := v.ValidateInput(input)
	require.Error(t, err)

	var validationErrs *pkgerrors.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Len(t, validationErrs.ToMap()["enables"], 1)
}
