package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "learngraph/pkg/errors"
)

func TestWithDetailLeavesSentinelUntouched(t *testing.T) {
	derived := pkgerrors.ErrDanglingPrerequisite.WithDetail("missing", "ghost-concept")

	assert.Equal(t, "ghost-concept", derived.Details["missing"])
	assert.Empty(t, pkgerrors.ErrDanglingPrerequisite.Details)

	// Derived errors still match their sentinel by type and code
	assert.ErrorIs(t, derived, pkgerrors.ErrDanglingPrerequisite)
}

func TestValidationErrorsToMapGroupsByField(t *testing.T) {
	validationErrs := pkgerrors.NewValidationErrors()
	validationErrs.Add("name", "Name is required")
	validationErrs.Add("name", "Name is too long")
	validationErrs.Add("difficulty", "Difficulty must be between 1 and 5")
	validationErrs.AddError(pkgerrors.ErrCyclicDependency)

	require.True(t, validationErrs.HasErrors())

	fields := validationErrs.ToMap()
	assert.Len(t, fields["name"], 2)
	assert.Len(t, fields["difficulty"], 1)
	// Errors without a field detail land under general
	assert.Len(t, fields["general"], 1)

	assert.Contains(t, validationErrs.Error(), "Validation failed")
}

func TestValidationErrorsEmpty(t *testing.T) {
	validationErrs := pkgerrors.NewValidationErrors()
	assert.False(t, validationErrs.HasErrors())
	assert.Empty(t, validationErrs.Error())
}
