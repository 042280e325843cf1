// Package app wires configuration, storage and the application handlers
// together for the CLI adapter.
package app

import (
	"context"
	"fmt"
	"log/slog"

	mastersCommands "github.com/genbaworks/genba/internal/masters/application/commands"
	mastersQueries "github.com/genbaworks/genba/internal/masters/application/queries"
	mastersDomain "github.com/genbaworks/genba/internal/masters/domain"
	mastersPersistence "github.com/genbaworks/genba/internal/masters/infrastructure/persistence"
	portfolioCommands "github.com/genbaworks/genba/internal/portfolio/application/commands"
	portfolioQueries "github.com/genbaworks/genba/internal/portfolio/application/queries"
	portfolioDomain "github.com/genbaworks/genba/internal/portfolio/domain"
	portfolioPersistence "github.com/genbaworks/genba/internal/portfolio/infrastructure/persistence"
	scenarioCommands "github.com/genbaworks/genba/internal/scenario/application/commands"
	scenarioQueries "github.com/genbaworks/genba/internal/scenario/application/queries"
	scenarioDomain "github.com/genbaworks/genba/internal/scenario/domain"
	scenarioPersistence "github.com/genbaworks/genba/internal/scenario/infrastructure/persistence"
	"github.com/genbaworks/genba/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Repositories
	ProjectRepo  portfolioDomain.Repository
	ScenarioRepo scenarioDomain.Repository
	MastersRepo  mastersDomain.Repository

	// Portfolio command handlers
	CreateProjectHandler  *portfolioCommands.CreateProjectHandler
	SaveProjectsHandler   *portfolioCommands.SaveProjectsHandler
	ImportProjectsHandler *portfolioCommands.ImportProjectsHandler

	// Portfolio query handlers
	ListProjectsHandler        *portfolioQueries.ListProjectsHandler
	GetPortfolioSummaryHandler *portfolioQueries.GetPortfolioSummaryHandler
	GetMonthlySummaryHandler   *portfolioQueries.GetMonthlySummaryHandler
	GetTimelineHandler         *portfolioQueries.GetTimelineHandler
	GetScheduleHandler         *portfolioQueries.GetScheduleHandler
	GetGanttHandler            *portfolioQueries.GetGanttHandler
	SummarizeResourcesHandler  *portfolioQueries.SummarizeResourcesHandler
	ValidateProjectsHandler    *portfolioQueries.ValidateProjectsHandler

	// Scenario handlers
	UpdateTaskHandler       *scenarioCommands.UpdateTaskHandler
	AddTaskHandler          *scenarioCommands.AddTaskHandler
	CompareScenariosHandler *scenarioQueries.CompareScenariosHandler

	// Masters handlers
	AddEntryHandler         *mastersCommands.AddEntryHandler
	SetEntryActiveHandler   *mastersCommands.SetEntryActiveHandler
	GetMastersHandler       *mastersQueries.GetMastersHandler
	GetActiveChoicesHandler *mastersQueries.GetActiveChoicesHandler
}

// NewContainer builds the dependency graph and seeds the data directory
// with the sample data set when the files do not exist yet.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	projectRepo := portfolioPersistence.NewCSVProjectRepository(cfg.ProjectsPath())
	scenarioRepo := scenarioPersistence.NewJSONScenarioRepository(cfg.ScenariosPath())
	mastersRepo := mastersPersistence.NewJSONMastersRepository(cfg.MastersPath())

	if err := projectRepo.Ensure(ctx); err != nil {
		return nil, fmt.Errorf("ensure projects file: %w", err)
	}
	if err := scenarioRepo.Ensure(ctx); err != nil {
		return nil, fmt.Errorf("ensure scenarios file: %w", err)
	}
	if err := mastersRepo.Ensure(ctx); err != nil {
		return nil, fmt.Errorf("ensure masters file: %w", err)
	}
	logger.Debug("data directory ready", "dir", cfg.DataDir)

	return &Container{
		Config: cfg,
		Logger: logger,

		ProjectRepo:  projectRepo,
		ScenarioRepo: scenarioRepo,
		MastersRepo:  mastersRepo,

		CreateProjectHandler:  portfolioCommands.NewCreateProjectHandler(projectRepo),
		SaveProjectsHandler:   portfolioCommands.NewSaveProjectsHandler(projectRepo),
		ImportProjectsHandler: portfolioCommands.NewImportProjectsHandler(projectRepo),

		ListProjectsHandler:        portfolioQueries.NewListProjectsHandler(projectRepo),
		GetPortfolioSummaryHandler: portfolioQueries.NewGetPortfolioSummaryHandler(projectRepo),
		GetMonthlySummaryHandler:   portfolioQueries.NewGetMonthlySummaryHandler(projectRepo),
		GetTimelineHandler:         portfolioQueries.NewGetTimelineHandler(projectRepo),
		GetScheduleHandler:         portfolioQueries.NewGetScheduleHandler(projectRepo),
		GetGanttHandler:            portfolioQueries.NewGetGanttHandler(projectRepo),
		SummarizeResourcesHandler:  portfolioQueries.NewSummarizeResourcesHandler(projectRepo),
		ValidateProjectsHandler:    portfolioQueries.NewValidateProjectsHandler(projectRepo),

		UpdateTaskHandler:       scenarioCommands.NewUpdateTaskHandler(scenarioRepo),
		AddTaskHandler:          scenarioCommands.NewAddTaskHandler(scenarioRepo),
		CompareScenariosHandler: scenarioQueries.NewCompareScenariosHandler(scenarioRepo),

		AddEntryHandler:         mastersCommands.NewAddEntryHandler(mastersRepo, nil),
		SetEntryActiveHandler:   mastersCommands.NewSetEntryActiveHandler(mastersRepo, nil),
		GetMastersHandler:       mastersQueries.NewGetMastersHandler(mastersRepo),
		GetActiveChoicesHandler: mastersQueries.NewGetActiveChoicesHandler(mastersRepo),
	}, nil
}
