package entities

import (
	"learngraph/domain/core/valueobjects"
	pkgerrors "learngraph/pkg/errors"
)

// ConceptInput is the raw authoring record for a concept, assembled by the
// static content modules. It is validated before a Concept entity is built
// from it; validator tags cover presence and range checks, enumeration and
// id-format checks live in the concept validator.
type ConceptInput struct {
	ID            string                     `json:"id" validate:"required"`
	Name          string                     `json:"name" validate:"required"`
	Layer         valueobjects.Layer         `json:"layer" validate:"required"`
	Domain        valueobjects.Domain        `json:"domain" validate:"required"`
	Definition    string                     `json:"definition" validate:"required"`
	Visualization valueobjects.Visualization `json:"visualization" validate:"required"`
	Prerequisites []string                   `json:"prerequisites"`
	Enables       []string                   `json:"enables,omitempty"`
	Metadata      MetadataInput              `json:"metadata"`
}

// MetadataInput carries the optional descriptive fields of a concept
type MetadataInput struct {
	Difficulty    int      `json:"difficulty" validate:"required,gte=1,lte=5"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// Metadata contains additional concept information
type Metadata struct {
	Difficulty    int
	EstimatedTime string
	Tags          []string
}

// Concept is the main entity representing an atomic learnable unit
// This is a rich domain model with encapsulated read-only state
type Concept struct {
	// Private fields ensure encapsulation
	id            valueobjects.ConceptID
	name          string
	layer         valueobjects.Layer
	domain        valueobjects.Domain
	definition    string
	visualization valueobjects.Visualization
	prerequisites []valueobjects.ConceptID
	enables       []valueobjects.ConceptID
	metadata      Metadata
}

// NewConcept builds a Concept entity from an already-validated input record.
// It only re-checks what it cannot represent otherwise: the id tokens.
func NewConcept(input ConceptInput) (*Concept, error) {
	id, err := valueobjects.NewConceptID(input.ID)
	if err != nil {
		return nil, pkgerrors.ErrInvalidConceptID.WithDetail("id", input.ID)
	}

	prereqs, err := parseIDList(input.Prerequisites)
	if err != nil {
		return nil, pkgerrors.ErrInvalidConceptID.WithDetail("prerequisites", input.Prerequisites)
	}

	enables, err := parseIDList(input.Enables)
	if err != nil {
		return nil, pkgerrors.ErrInvalidConceptID.WithDetail("enables", input.Enables)
	}

	return &Concept{
		id:            id,
		name:          input.Name,
		layer:         input.Layer,
		domain:        input.Domain,
		definition:    input.Definition,
		visualization: input.Visualization,
		prerequisites: prereqs,
		enables:       enables,
		metadata: Metadata{
			Difficulty:    input.Metadata.Difficulty,
			EstimatedTime: input.Metadata.EstimatedTime,
			Tags:          append([]string(nil), input.Metadata.Tags...),
		},
	}, nil
}

// ID returns the concept's unique identifier
func (c *Concept) ID() valueobjects.ConceptID {
	return c.id
}

// Name returns the display name
func (c *Concept) Name() string {
	return c.name
}

// Layer returns the curriculum layer
func (c *Concept) Layer() valueobjects.Layer {
	return c.layer
}

// Domain returns the mathematical domain tag
func (c *Concept) Domain() valueobjects.Domain {
	return c.domain
}

// Definition returns the concept's definition text
func (c *Concept) Definition() string {
	return c.definition
}

// Visualization returns the visualization capability marker
func (c *Concept) Visualization() valueobjects.Visualization {
	return c.visualization
}

// Prerequisites returns the declared prerequisite ids in declaration order
func (c *Concept) Prerequisites() []valueobjects.ConceptID {
	// Return a copy to maintain encapsulation
	return append([]valueobjects.ConceptID(nil), c.prerequisites...)
}

// Enables returns the declared enables hint, normally derivable from the
// reverse edge index
func (c *Concept) Enables() []valueobjects.ConceptID {
	return append([]valueobjects.ConceptID(nil), c.enables...)
}

// Metadata returns the concept's metadata
func (c *Concept) Metadata() Metadata {
	meta := c.metadata
	meta.Tags = append([]string(nil), c.metadata.Tags...)
	return meta
}

// HasPrerequisites reports whether the concept declares any prerequisites
func (c *Concept) HasPrerequisites() bool {
	return len(c.prerequisites) > 0
}

func parseIDList(raw []string) ([]valueobjects.ConceptID, error) {
	ids := make([]valueobjects.ConceptID, 0, len(raw))
	for _, s := range raw {
		id, err := valueobjects.NewConceptID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
