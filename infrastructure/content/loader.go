package content

import (
	"go.uber.org/zap"

	"learngraph/domain/core/aggregates"
	"learngraph/domain/core/entities"
	pkgerrors "learngraph/pkg/errors"
)

// Loader assembles a curriculum aggregate from authoring records. The
// engine itself imposes no policy on bad content; the loader is the caller
// that decides, driven by the strict flag: abort on the first invalid
// record, or skip it and keep loading.
type Loader struct {
	logger *zap.Logger
	strict bool
}

// NewLoader creates a new content loader
func NewLoader(logger *zap.Logger, strict bool) *Loader {
	return &Loader{
		logger: logger,
		strict: strict,
	}
}

// Load registers the given records into a fresh curriculum, freezes it,
// and runs the strict content-validation pass (dangling references,
// cycles). The returned curriculum is frozen and ready to publish.
func (l *Loader) Load(name string, inputs []entities.ConceptInput) (*aggregates.Curriculum, error) {
	curriculum := aggregates.NewCurriculum(name)

	skipped := 0
	for _, input := range inputs {
		if err := curriculum.Register(input); err != nil {
			if l.strict {
				return nil, pkgerrors.Wrapf(err, "register concept %q", input.ID)
			}
			skipped++
			l.logger.Warn("skipping invalid concept record",
				zap.String("concept", input.ID),
				zap.Error(err),
			)
		}
	}

	curriculum.Freeze()

	if err := curriculum.Validate(); err != nil {
		if l.strict {
			return nil, pkgerrors.Wrapf(err, "validate curriculum %q", name)
		}
		l.logger.Warn("curriculum failed strict validation; queries will degrade leniently",
			zap.String("curriculum", name),
			zap.Error(err),
		)
	}

	l.logger.Info("curriculum loaded",
		zap.String("curriculum", name),
		zap.String("id", curriculum.ID().String()),
		zap.Int("concepts", curriculum.ConceptCount()),
		zap.Int("edges", curriculum.EdgeCount()),
		zap.Int("skipped", skipped),
	)
	curriculum.MarkEventsAsCommitted()

	return curriculum, nil
}

// LoadDefault loads the built-in mathematics catalog
func (l *Loader) LoadDefault(name string) (*aggregates.Curriculum, error) {
	return l.Load(name, Catalog())
}
