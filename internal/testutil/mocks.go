// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"

	"github.com/runoshun/stackq/internal/domain"
)

// MockQuestionsAPI is a test double for domain.QuestionsAPI.
// When Block is non-nil, calls wait for it to be closed or for ctx to be done.
// Fields are ordered to minimize memory padding.
type MockQuestionsAPI struct {
	Details      map[int64]*domain.QuestionDetails
	Block        chan struct{}
	Started      chan struct{} // Receives a value when a call starts (optional, buffered by caller)
	ListErr      error
	DetailsErr   error
	Questions    []domain.Question
	PageSizes    []int
	DetailsCalls []int64
	mu           sync.Mutex
}

// NewMockQuestionsAPI creates a new MockQuestionsAPI returning the given questions.
func NewMockQuestionsAPI(questions ...domain.Question) *MockQuestionsAPI {
	return &MockQuestionsAPI{
		Questions: questions,
		Details:   make(map[int64]*domain.QuestionDetails),
	}
}

func (m *MockQuestionsAPI) wait(ctx context.Context) error {
	if m.Started != nil {
		m.Started <- struct{}{}
	}
	if m.Block == nil {
		return nil
	}
	select {
	case <-m.Block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LastActiveQuestions returns the configured questions or ListErr.
func (m *MockQuestionsAPI) LastActiveQuestions(ctx context.Context, pageSize int) ([]domain.Question, error) {
	m.mu.Lock()
	m.PageSizes = append(m.PageSizes, pageSize)
	m.mu.Unlock()

	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Questions, nil
}

// QuestionDetails returns the configured details or DetailsErr.
func (m *MockQuestionsAPI) QuestionDetails(ctx context.Context, id int64) (*domain.QuestionDetails, error) {
	m.mu.Lock()
	m.DetailsCalls = append(m.DetailsCalls, id)
	m.mu.Unlock()

	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if m.DetailsErr != nil {
		return nil, m.DetailsErr
	}
	d, ok := m.Details[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return d, nil
}

// CallCount returns how many list calls were made.
func (m *MockQuestionsAPI) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.PageSizes)
}

// MockScreensNavigator is a test double for domain.ScreensNavigator.
type MockScreensNavigator struct {
	DetailsIDs []int64
	BackCalls  int
	mu         sync.Mutex
}

// ToQuestionDetails records the requested question.
func (m *MockScreensNavigator) ToQuestionDetails(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DetailsIDs = append(m.DetailsIDs, id)
}

// NavigateBack records a back navigation.
func (m *MockScreensNavigator) NavigateBack() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BackCalls++
}

// MockDialogsNavigator is a test double for domain.DialogsNavigator.
type MockDialogsNavigator struct {
	ServerErrorCalls int
	mu               sync.Mutex
}

// ShowServerErrorDialog records the dialog.
func (m *MockDialogsNavigator) ShowServerErrorDialog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ServerErrorCalls++
}

// Count returns how many times the server error dialog was shown.
func (m *MockDialogsNavigator) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ServerErrorCalls
}

// InlineDispatcher runs dispatched functions immediately, one at a time.
type InlineDispatcher struct {
	mu sync.Mutex
}

// Dispatch runs fn while holding the dispatcher lock.
func (d *InlineDispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// QueueDispatcher holds dispatched functions until Drain runs them.
// It stands in for an event loop: the goroutine calling Drain is the only one
// that touches view state.
type QueueDispatcher struct {
	mu      sync.Mutex
	pending []func()
}

// Dispatch queues fn.
func (d *QueueDispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, fn)
}

// Drain runs queued functions in order on the calling goroutine until the
// queue is empty, including any queued while draining. It returns how many ran.
func (d *QueueDispatcher) Drain() int {
	ran := 0
	for {
		d.mu.Lock()
		if len(d.pending) == 0 {
			d.mu.Unlock()
			return ran
		}
		fn := d.pending[0]
		d.pending = d.pending[1:]
		d.mu.Unlock()

		fn()
		ran++
	}
}

// Len returns the number of queued functions.
func (d *QueueDispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config   *domain.Config
	LoadErr  error
	LastOpts domain.LoadConfigOptions
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the configured config and records the options.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOpts = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	GlobalInfo domain.ConfigInfo
	LocalInfo  domain.ConfigInfo
	InitGlobal bool
	InitLocal  bool
}

// GetGlobalConfigInfo returns GlobalInfo.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// GetLocalConfigInfo returns LocalInfo.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo { return m.LocalInfo }

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobal = true
	return m.InitErr
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(_ *domain.Config) error {
	m.InitLocal = true
	return m.InitErr
}
