package di

import (
	"go.uber.org/zap"

	"learngraph/application/services"
	"learngraph/infrastructure/config"
	"learngraph/infrastructure/content"
	pkgerrors "learngraph/pkg/errors"
)

// Container wires the application's collaborators together. Construction
// is explicit rather than generated: the object graph is small enough to
// read top to bottom.
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Publisher    *content.Publisher
	GraphQueries *services.GraphQueryService
	PathPlanner  *services.PathPlannerService
	ErrorHandler *pkgerrors.ErrorHandler
}

// InitializeContainer builds the full dependency graph: logger, content
// load, publish, services
func InitializeContainer(cfg *config.Config) (*Container, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	loader := content.NewLoader(logger, cfg.StrictContent)
	curriculum, err := loader.LoadDefault(cfg.CurriculumName)
	if err != nil {
		return nil, err
	}

	publisher := content.NewPublisher()
	if err := publisher.Publish(curriculum); err != nil {
		return nil, err
	}

	graphQueries := services.NewGraphQueryService(publisher, logger)
	pathPlanner := services.NewPathPlannerService(publisher, graphQueries, logger)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		Publisher:    publisher,
		GraphQueries: graphQueries,
		PathPlanner:  pathPlanner,
		ErrorHandler: pkgerrors.NewErrorHandler(logger),
	}, nil
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown() {
	_ = c.Logger.Sync()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "parse log level %q", cfg.LogLevel)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}
