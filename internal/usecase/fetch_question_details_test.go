package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchQuestionDetails_Execute_Success(t *testing.T) {
	// Setup
	api := testutil.NewMockQuestionsAPI()
	api.Details[7] = &domain.QuestionDetails{
		Question: domain.Question{ID: 7, Title: "How?"},
		Body:     "<p>Like this</p>",
	}
	uc := NewFetchQuestionDetails(api, nil)

	// Execute
	result, err := uc.Execute(context.Background(), FetchQuestionDetailsInput{QuestionID: 7})

	// Assert
	require.NoError(t, err)
	success, ok := result.(domain.FetchSuccess[domain.QuestionDetails])
	require.True(t, ok)
	assert.Equal(t, int64(7), success.Value.ID)
	assert.Equal(t, "How?", success.Value.Title)
	assert.Equal(t, "<p>Like this</p>", success.Value.Body)
	assert.Equal(t, []int64{7}, api.DetailsCalls)
}

func TestFetchQuestionDetails_Execute_Failures(t *testing.T) {
	tests := []struct {
		detailsErr error
		name       string
	}{
		{name: "not found", detailsErr: nil},
		{name: "transport error", detailsErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewMockQuestionsAPI()
			api.DetailsErr = tt.detailsErr
			uc := NewFetchQuestionDetails(api, nil)

			result, err := uc.Execute(context.Background(), FetchQuestionDetailsInput{QuestionID: 99})

			require.NoError(t, err)
			assert.IsType(t, domain.FetchFailure[domain.QuestionDetails]{}, result)
		})
	}
}

func TestFetchQuestionDetails_Execute_Cancelled(t *testing.T) {
	api := testutil.NewMockQuestionsAPI()
	api.Block = make(chan struct{})
	uc := NewFetchQuestionDetails(api, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := uc.Execute(ctx, FetchQuestionDetailsInput{QuestionID: 1})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
