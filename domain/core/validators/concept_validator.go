package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"learngraph/domain/core/entities"
	"learngraph/domain/core/valueobjects"
	"learngraph/pkg/errors"
)

// ConceptValidator validates concept authoring records at registration time.
// Registration is the strict side of the engine: every violation found is
// reported, not just the first.
type ConceptValidator struct {
	validate      *validator.Validate
	nameMaxLength int
	maxTags       int
	tagMaxLength  int
}

// NewConceptValidator creates a new concept validator with default rules
func NewConceptValidator() *ConceptValidator {
	return &ConceptValidator{
		validate:      validator.New(),
		nameMaxLength: 120,
		maxTags:       20,
		tagMaxLength:  50,
	}
}

// ValidateInput checks a raw concept record against all registration rules.
// It returns nil on success, or a *errors.ValidationErrors enumerating every
// violated constraint.
func (v *ConceptValidator) ValidateInput(input entities.ConceptInput) error {
	validationErrors := errors.NewValidationErrors()

	// Tag-declared checks: required fields and difficulty range
	if err := v.validate.Struct(input); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				validationErrors.Add(strings.ToLower(fe.Field()), describeFieldError(fe))
			}
		} else {
			validationErrors.Add("general", err.Error())
		}
	}

	// Id format
	if input.ID != "" && !valueobjects.IsValidConceptID(input.ID) {
		validationErrors.AddError(errors.ErrInvalidConceptID.WithDetail("field", "id").WithDetail("id", input.ID))
	}

	// Name length
	if len(input.Name) > v.nameMaxLength {
		validationErrors.Add("name", fmt.Sprintf("name exceeds maximum length of %d", v.nameMaxLength))
	}

	// Enumeration membership
	if input.Layer != "" && !input.Layer.IsValid() {
		validationErrors.Add("layer", fmt.Sprintf("unknown layer %q", input.Layer))
	}
	if input.Domain != "" && !input.Domain.IsValid() {
		validationErrors.Add("domain", fmt.Sprintf("unknown domain %q", input.Domain))
	}
	if input.Visualization != "" && !input.Visualization.IsValid() {
		validationErrors.Add("visualization", fmt.Sprintf("unknown visualization %q", input.Visualization))
	}

	// Prerequisite and enables lists must be sequences of well-formed ids
	v.validateIDList(validationErrors, "prerequisites", input.Prerequisites)
	v.validateIDList(validationErrors, "enables", input.Enables)

	// A concept cannot be its own prerequisite
	for _, p := range input.Prerequisites {
		if p == input.ID && input.ID != "" {
			validationErrors.Add("prerequisites", "a concept cannot declare itself as a prerequisite")
			break
		}
	}

	// Tag limits
	if len(input.Metadata.Tags) > v.maxTags {
		validationErrors.Add("tags", fmt.Sprintf("at most %d tags are allowed", v.maxTags))
	}
	for _, tag := range input.Metadata.Tags {
		if len(tag) > v.tagMaxLength {
			validationErrors.Add("tags", fmt.Sprintf("tag %q exceeds maximum length of %d", tag, v.tagMaxLength))
		}
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}

// validateIDList reports every malformed id token in a declared id sequence
func (v *ConceptValidator) validateIDList(errs *errors.ValidationErrors, field string, ids []string) {
	for _, raw := range ids {
		if !valueobjects.IsValidConceptID(raw) {
			errs.Add(field, fmt.Sprintf("%q is not a valid concept id", raw))
		}
	}
}

// describeFieldError turns a validator tag failure into a readable message
func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
