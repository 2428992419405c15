package aggregates

import (
	"fmt"

	"github.com/google/uuid"

	"learngraph/domain/core/entities"
	"learngraph/domain/core/validators"
	"learngraph/domain/core/valueobjects"
	"learngraph/domain/events"
	pkgerrors "learngraph/pkg/errors"
	"learngraph/pkg/utils"
)

// CurriculumID represents a unique curriculum identifier
type CurriculumID string

// NewCurriculumID creates a new random CurriculumID
func NewCurriculumID() CurriculumID {
	return CurriculumID(uuid.New().String())
}

// String returns the string representation
func (id CurriculumID) String() string {
	return string(id)
}

// Curriculum is the aggregate root for the concept dependency graph.
// It owns the concept registry and the derived reverse edge index, and it
// enforces the two-phase lifecycle: bulk registration, then Freeze.
// Once frozen it is immutable; a hosting environment that needs to reload
// content builds a fresh Curriculum and swaps the published reference.
type Curriculum struct {
	id       CurriculumID
	name     string
	concepts map[valueobjects.ConceptID]*entities.Concept
	order    []valueobjects.ConceptID

	// Reverse adjacency, prerequisite -> dependents, built by Freeze
	dependents map[valueobjects.ConceptID][]valueobjects.ConceptID
	edgeCount  int
	frozen     bool

	validator *validators.ConceptValidator
	events    []events.DomainEvent
}

// NewCurriculum creates an empty, unfrozen curriculum aggregate
func NewCurriculum(name string) *Curriculum {
	return &Curriculum{
		id:         NewCurriculumID(),
		name:       name,
		concepts:   make(map[valueobjects.ConceptID]*entities.Concept),
		order:      []valueobjects.ConceptID{},
		dependents: make(map[valueobjects.ConceptID][]valueobjects.ConceptID),
		validator:  validators.NewConceptValidator(),
		events:     []events.DomainEvent{},
	}
}

// ID returns the curriculum's unique identifier
func (c *Curriculum) ID() CurriculumID {
	return c.id
}

// Name returns the curriculum's name
func (c *Curriculum) Name() string {
	return c.name
}

// Register validates a concept record and inserts it, keyed by id.
// Registration is strict: any violation fails with a validation error
// listing every violated constraint. A record with an id that was already
// registered overwrites the prior entry, keeping its original slot in
// registration order.
func (c *Curriculum) Register(input entities.ConceptInput) error {
	if c.frozen {
		return pkgerrors.ErrCurriculumFrozen
	}

	if err := c.validator.ValidateInput(input); err != nil {
		return err
	}

	concept, err := entities.NewConcept(input)
	if err != nil {
		return err
	}

	id := concept.ID()
	_, replaced := c.concepts[id]
	c.concepts[id] = concept
	if !replaced {
		c.order = append(c.order, id)
	}

	c.addEvent(events.NewConceptRegistered(c.id.String(), id, replaced))
	return nil
}

// Freeze publishes the curriculum: it builds the reverse edge index from
// each concept's declared prerequisite list and marks the aggregate
// immutable. Declared enables entries only contribute edges that no
// prerequisites list already captures.
func (c *Curriculum) Freeze() {
	if c.frozen {
		return
	}

	c.dependents = make(map[valueobjects.ConceptID][]valueobjects.ConceptID, len(c.concepts))
	c.edgeCount = 0

	for _, id := range c.order {
		concept := c.concepts[id]
		for _, prereq := range concept.Prerequisites() {
			c.addDependent(prereq, id)
		}
	}

	// Enables hints act only as an override for edges not derived above
	for _, id := range c.order {
		concept := c.concepts[id]
		for _, enabled := range concept.Enables() {
			if !c.hasDependent(id, enabled) {
				c.addDependent(id, enabled)
			}
		}
	}

	c.frozen = true
	c.addEvent(events.NewCurriculumPublished(c.id.String(), len(c.concepts), c.edgeCount))
}

// IsFrozen reports whether Freeze has been called
func (c *Curriculum) IsFrozen() bool {
	return c.frozen
}

// Get retrieves a concept by id; the second return value is the not-found
// sentinel. Lookups never fail with an error.
func (c *Curriculum) Get(id valueobjects.ConceptID) (*entities.Concept, bool) {
	concept, ok := c.concepts[id]
	return concept, ok
}

// All returns every registered concept in registration order
func (c *Curriculum) All() []*entities.Concept {
	all := make([]*entities.Concept, 0, len(c.order))
	for _, id := range c.order {
		all = append(all, c.concepts[id])
	}
	return all
}

// ByLayer returns the concepts registered with exactly the given layer,
// in registration order
func (c *Curriculum) ByLayer(layer valueobjects.Layer) []*entities.Concept {
	return utils.Filter(c.All(), func(concept *entities.Concept) bool {
		return concept.Layer() == layer
	})
}

// Prerequisites returns the direct prerequisite ids a concept declares,
// unchanged. An unknown id yields an empty sequence.
func (c *Curriculum) Prerequisites(id valueobjects.ConceptID) []valueobjects.ConceptID {
	concept, ok := c.concepts[id]
	if !ok {
		return []valueobjects.ConceptID{}
	}
	return concept.Prerequisites()
}

// Dependents returns the ids that declared the given id as a prerequisite,
// in registration order. An unknown id yields an empty sequence.
func (c *Curriculum) Dependents(id valueobjects.ConceptID) []valueobjects.ConceptID {
	deps, ok := c.dependents[id]
	if !ok {
		return []valueobjects.ConceptID{}
	}
	return append([]valueobjects.ConceptID(nil), deps...)
}

// ConceptCount returns the number of registered concepts
func (c *Curriculum) ConceptCount() int {
	return len(c.concepts)
}

// EdgeCount returns the number of edges in the index; zero before Freeze
func (c *Curriculum) EdgeCount() int {
	return c.edgeCount
}

// Validate is the strict content-validation pass, distinct from the lenient
// runtime query path. It reports every dangling prerequisite reference and
// every cycle in the prerequisite graph. Runtime traversals remain
// cycle-safe regardless; this pass exists so authoring mistakes surface at
// load time instead of silently truncating query results.
func (c *Curriculum) Validate() error {
	validationErrors := pkgerrors.NewValidationErrors()

	for _, id := range c.order {
		concept := c.concepts[id]
		for _, prereq := range concept.Prerequisites() {
			if _, ok := c.concepts[prereq]; !ok {
				validationErrors.AddError(
					pkgerrors.ErrDanglingPrerequisite.
						WithDetail("field", "prerequisites").
						WithDetail("concept", id.String()).
						WithDetail("missing", prereq.String()),
				)
			}
		}
		for _, enabled := range concept.Enables() {
			if _, ok := c.concepts[enabled]; !ok {
				validationErrors.AddError(
					pkgerrors.ErrDanglingPrerequisite.
						WithDetail("field", "enables").
						WithDetail("concept", id.String()).
						WithDetail("missing", enabled.String()),
				)
			}
		}
	}

	for _, cycle := range c.findCycles() {
		validationErrors.AddError(
			pkgerrors.ErrCyclicDependency.WithDetail("cycle", formatCycle(cycle)),
		)
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}
	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (c *Curriculum) GetUncommittedEvents() []events.DomainEvent {
	all := make([]events.DomainEvent, len(c.events))
	copy(all, c.events)
	return all
}

// MarkEventsAsCommitted clears all uncommitted events
func (c *Curriculum) MarkEventsAsCommitted() {
	c.events = []events.DomainEvent{}
}

// Private helper methods

func (c *Curriculum) addEvent(event events.DomainEvent) {
	c.events = append(c.events, event)
}

func (c *Curriculum) addDependent(prereq, dependent valueobjects.ConceptID) {
	c.dependents[prereq] = append(c.dependents[prereq], dependent)
	c.edgeCount++
}

func (c *Curriculum) hasDependent(prereq, dependent valueobjects.ConceptID) bool {
	for _, d := range c.dependents[prereq] {
		if d.Equals(dependent) {
			return true
		}
	}
	return false
}

// findCycles locates prerequisite cycles with a three-color depth-first
// search over the declared forward edges. Each cycle is reported once,
// anchored at the first node the search re-entered.
func (c *Curriculum) findCycles() [][]valueobjects.ConceptID {
	const (
		white = 0
		grey  = 1
		black = 2
	)

	colors := make(map[valueobjects.ConceptID]int, len(c.concepts))
	var cycles [][]valueobjects.ConceptID
	var stack []valueobjects.ConceptID

	var visit func(id valueobjects.ConceptID)
	visit = func(id valueobjects.ConceptID) {
		colors[id] = grey
		stack = append(stack, id)

		for _, prereq := range c.Prerequisites(id) {
			if _, registered := c.concepts[prereq]; !registered {
				// Dangling references are reported separately
				continue
			}
			switch colors[prereq] {
			case white:
				visit(prereq)
			case grey:
				// Slice the current path from the re-entered node onward
				for i, onPath := range stack {
					if onPath.Equals(prereq) {
						cycle := append([]valueobjects.ConceptID(nil), stack[i:]...)
						cycles = append(cycles, cycle)
						break
					}
				}
			}
		}

		stack = stack[:len(stack)-1]
		colors[id] = black
	}

	for _, id := range c.order {
		if colors[id] == white {
			visit(id)
		}
	}

	return cycles
}

func formatCycle(cycle []valueobjects.ConceptID) string {
	path := ""
	for _, id := range cycle {
		path += id.String() + " -> "
	}
	return fmt.Sprintf("%s%s", path, cycle[0])
}
