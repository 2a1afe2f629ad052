package domain

import "context"

// QuestionsAPI is the remote source of questions.
type QuestionsAPI interface {
	// LastActiveQuestions returns up to pageSize questions ordered by last activity.
	LastActiveQuestions(ctx context.Context, pageSize int) ([]Question, error)

	// QuestionDetails returns the question with the given ID including its body.
	QuestionDetails(ctx context.Context, id int64) (*QuestionDetails, error)
}

// ScreensNavigator moves between screens.
type ScreensNavigator interface {
	// ToQuestionDetails opens the details screen for a question.
	ToQuestionDetails(id int64)

	// NavigateBack returns to the previous screen.
	NavigateBack()
}

// DialogsNavigator shows dialogs on top of the current screen.
type DialogsNavigator interface {
	// ShowServerErrorDialog shows the generic server error dialog.
	ShowServerErrorDialog()
}

// Dispatcher runs functions on the UI-affine execution context.
// View state is only mutated inside functions passed to Dispatch.
type Dispatcher interface {
	Dispatch(fn func())
}

// Logger provides logging.
type Logger interface {
	// Info logs an info message.
	Info(category, msg string)

	// Debug logs a debug message.
	Debug(category, msg string)

	// Warn logs a warning message.
	Warn(category, msg string)

	// Error logs an error message.
	Error(category, msg string)
}

// NopLogger discards all log messages.
type NopLogger struct{}

// Info does nothing.
func (NopLogger) Info(_, _ string) {}

// Debug does nothing.
func (NopLogger) Debug(_, _ string) {}

// Warn does nothing.
func (NopLogger) Warn(_, _ string) {}

// Error does nothing.
func (NopLogger) Error(_, _ string) {}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which config sources are read.
type LoadConfigOptions struct {
	IgnoreGlobal bool
	IgnoreLocal  bool
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the config template to the global config file.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig writes the config template to the local config file.
	InitLocalConfig(cfg *Config) error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
