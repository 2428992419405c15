package content

import (
	"sync/atomic"

	"learngraph/domain/core/aggregates"
	pkgerrors "learngraph/pkg/errors"
)

// Publisher holds the currently published curriculum behind an atomic
// pointer. Hot-reloading content means building a fresh frozen curriculum
// and swapping the reference; readers that grabbed the old pointer keep a
// consistent store/index pair, so no query ever observes a partially built
// edge index.
type Publisher struct {
	current atomic.Pointer[aggregates.Curriculum]
}

// NewPublisher creates an empty publisher
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish atomically replaces the published curriculum. Only frozen
// curricula can be published.
func (p *Publisher) Publish(curriculum *aggregates.Curriculum) error {
	if curriculum == nil {
		return pkgerrors.NewInternalError("cannot publish a nil curriculum")
	}
	if !curriculum.IsFrozen() {
		return pkgerrors.ErrCurriculumNotFrozen
	}
	p.current.Store(curriculum)
	return nil
}

// Current returns the published curriculum. Before the first Publish it
// returns an empty frozen curriculum so readers degrade to empty results
// instead of nil dereferences.
func (p *Publisher) Current() *aggregates.Curriculum {
	if curriculum := p.current.Load(); curriculum != nil {
		return curriculum
	}
	empty := aggregates.NewCurriculum("empty")
	empty.Freeze()
	return empty
}
