package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/infra/stackoverflow"
	"github.com/runoshun/stackq/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStackOverflowUseCase(t *testing.T, handler http.HandlerFunc) *FetchQuestions {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := stackoverflow.NewClient(server.Client(), stackoverflow.Options{BaseURL: server.URL})
	return NewFetchQuestions(client, nil, 20)
}

func requireSuccess(t *testing.T, result FetchQuestionsResult) []domain.Question {
	t.Helper()
	success, ok := result.(domain.FetchSuccess[[]domain.Question])
	require.True(t, ok, "expected FetchSuccess, got %T", result)
	return success.Value
}

func TestFetchQuestions_Execute_Success(t *testing.T) {
	// Setup
	api := testutil.NewMockQuestionsAPI(
		domain.Question{ID: 1, Title: "Q1"},
		domain.Question{ID: 2, Title: "Q2"},
	)
	uc := NewFetchQuestions(api, nil, 20)

	// Execute
	result, err := uc.Execute(context.Background(), FetchQuestionsInput{})

	// Assert
	require.NoError(t, err)
	questions := requireSuccess(t, result)
	assert.Equal(t, []domain.Question{{ID: 1, Title: "Q1"}, {ID: 2, Title: "Q2"}}, questions)
	assert.Equal(t, []int{20}, api.PageSizes)
}

func TestFetchQuestions_Execute_TransportFailure(t *testing.T) {
	// Setup
	api := testutil.NewMockQuestionsAPI()
	api.ListErr = errors.New("connection refused")
	uc := NewFetchQuestions(api, nil, 20)

	// Execute
	result, err := uc.Execute(context.Background(), FetchQuestionsInput{})

	// Assert
	require.NoError(t, err)
	assert.IsType(t, domain.FetchFailure[[]domain.Question]{}, result)
}

func TestFetchQuestions_Execute_CancelledBeforeCall(t *testing.T) {
	api := testutil.NewMockQuestionsAPI()
	api.ListErr = context.Canceled
	uc := NewFetchQuestions(api, nil, 20)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := uc.Execute(ctx, FetchQuestionsInput{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

// Scenario D: the fetch is cancelled while the request is in flight.
func TestFetchQuestions_Execute_CancelledMidFlight(t *testing.T) {
	// Setup
	api := testutil.NewMockQuestionsAPI(domain.Question{ID: 1, Title: "Q1"})
	api.Block = make(chan struct{})
	api.Started = make(chan struct{}, 1)
	uc := NewFetchQuestions(api, nil, 20)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type outcome struct {
		result FetchQuestionsResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		r, err := uc.Execute(ctx, FetchQuestionsInput{})
		done <- outcome{result: r, err: err}
	}()

	// Execute
	<-api.Started
	cancel()

	// Assert
	select {
	case out := <-done:
		assert.ErrorIs(t, out.err, context.Canceled)
		assert.Nil(t, out.result)
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not return after cancellation")
	}
}

func TestFetchQuestions_Execute_DeadlineIsPropagated(t *testing.T) {
	api := testutil.NewMockQuestionsAPI()
	api.Block = make(chan struct{})
	uc := NewFetchQuestions(api, nil, 20)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	result, err := uc.Execute(ctx, FetchQuestionsInput{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, result)
}

func TestFetchQuestions_Execute_UsesConfiguredPageSize(t *testing.T) {
	api := testutil.NewMockQuestionsAPI()
	uc := NewFetchQuestions(api, nil, 5)

	_, err := uc.Execute(context.Background(), FetchQuestionsInput{})

	require.NoError(t, err)
	assert.Equal(t, []int{5}, api.PageSizes)
}

// Scenario A: status 200 with two questions.
func TestFetchQuestions_HTTP_ScenarioA(t *testing.T) {
	var pageSize string
	uc := newStackOverflowUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		pageSize = r.URL.Query().Get("pagesize")
		_, _ = w.Write([]byte(`{"questions":[{"id":1,"title":"Q1"},{"id":2,"title":"Q2"}]}`))
	})

	result, err := uc.Execute(context.Background(), FetchQuestionsInput{})

	require.NoError(t, err)
	assert.Equal(t, "20", pageSize)
	questions := requireSuccess(t, result)
	require.Len(t, questions, 2)
	assert.Equal(t, int64(1), questions[0].ID)
	assert.Equal(t, "Q1", questions[0].Title)
	assert.Equal(t, int64(2), questions[1].ID)
	assert.Equal(t, "Q2", questions[1].Title)
}

// Scenarios B and C plus other malformed responses.
func TestFetchQuestions_HTTP_Failures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "status 500", status: http.StatusInternalServerError, body: `{"questions":[]}`},
		{name: "status 404", status: http.StatusNotFound, body: ""},
		{name: "status 200 empty body", status: http.StatusOK, body: ""},
		{name: "status 200 null body", status: http.StatusOK, body: "null"},
		{name: "status 200 undecodable body", status: http.StatusOK, body: "<html>oops</html>"},
		{name: "status 200 wrong shape", status: http.StatusOK, body: `{"questions":{"id":1}}`},
		{name: "status 200 missing array", status: http.StatusOK, body: `{"quota_remaining":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newStackOverflowUseCase(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := uc.Execute(context.Background(), FetchQuestionsInput{})

			require.NoError(t, err)
			assert.IsType(t, domain.FetchFailure[[]domain.Question]{}, result)
		})
	}
}

func TestFetchQuestions_HTTP_OrderAndLengthMatchBody(t *testing.T) {
	uc := newStackOverflowUseCase(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"questions":[
			{"id":30,"title":"c"},
			{"id":10,"title":"a"},
			{"id":20,"title":"b"}
		]}`))
	})

	result, err := uc.Execute(context.Background(), FetchQuestionsInput{})

	require.NoError(t, err)
	questions := requireSuccess(t, result)
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []int64{30, 10, 20}, ids)
}

func TestFetchQuestions_HTTP_CancelledMidFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	uc := newStackOverflowUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	result, err := uc.Execute(ctx, FetchQuestionsInput{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
