// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"net/http"

	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/infra/config"
	"github.com/runoshun/stackq/internal/infra/logging"
	"github.com/runoshun/stackq/internal/infra/stackoverflow"
	"github.com/runoshun/stackq/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// Everything it holds is built once by New and shared afterwards.
type Container struct {
	// Ports (interfaces bound to implementations)
	Questions     domain.QuestionsAPI
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	Config     *domain.Config
	HTTPClient *http.Client
	closer     io.Closer

	// LogPath is the log file in use ("" when logging is disabled)
	LogPath string
}

// New creates a new Container for the given working directory.
// The local config file is looked up in dir.
func New(dir string) (*Container, error) {
	loader := config.NewLoader(dir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logPath := cfg.Log.File
	if logPath == "" && loader.GlobalDir() != "" {
		logPath = domain.DefaultLogPath(loader.GlobalDir())
	}
	logger := logging.New(logPath, logging.ParseLevel(cfg.Log.Level))

	// One HTTP client for the whole process
	httpClient := stackoverflow.NewHTTPClient(cfg.API.Timeout)
	client := stackoverflow.NewClient(httpClient, stackoverflow.Options{
		BaseURL: cfg.API.BaseURL,
		Site:    cfg.API.Site,
		Key:     cfg.API.Key,
	})

	return &Container{
		Questions:     client,
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(dir),
		Logger:        logger,
		Config:        cfg,
		HTTPClient:    httpClient,
		closer:        logger,
		LogPath:       logPath,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies (for testing).
// A nil cfg uses the defaults and a nil logger disables logging.
func NewWithDeps(cfg *domain.Config, questions domain.QuestionsAPI, loader domain.ConfigLoader, manager domain.ConfigManager, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Questions:     questions,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// FetchQuestionsUseCase returns a new FetchQuestions use case.
func (c *Container) FetchQuestionsUseCase() *usecase.FetchQuestions {
	return c.FetchQuestionsUseCaseWithPageSize(c.Config.API.PageSize)
}

// FetchQuestionsUseCaseWithPageSize returns a new FetchQuestions use case with the given page size.
func (c *Container) FetchQuestionsUseCaseWithPageSize(pageSize int) *usecase.FetchQuestions {
	return usecase.NewFetchQuestions(c.Questions, c.Logger, pageSize)
}

// FetchQuestionDetailsUseCase returns a new FetchQuestionDetails use case.
func (c *Container) FetchQuestionDetailsUseCase() *usecase.FetchQuestionDetails {
	return usecase.NewFetchQuestionDetails(c.Questions, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.LogPath)
}
