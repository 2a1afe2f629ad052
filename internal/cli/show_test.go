package cli

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/runoshun/stackq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneQuestion = `{"items":[{
	"question_id":42,
	"title":"What is &quot;this&quot;?",
	"score":10,
	"answer_count":2,
	"tags":["go","http"],
	"link":"https://stackoverflow.com/q/42",
	"owner":{"display_name":"carol"},
	"body":"<p>Some <code>code</code> here</p><p>Second paragraph</p>"
}]}`

func TestShowCommand_Text(t *testing.T) {
	var path, filter string
	c := newHTTPContainer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		filter = r.URL.Query().Get("filter")
		_, _ = w.Write([]byte(oneQuestion))
	})

	out, err := execute(t, c, "show", "42")

	require.NoError(t, err)
	assert.Equal(t, "/questions/42", path)
	assert.Equal(t, "withbody", filter)
	assert.Contains(t, out, `# 42: What is "this"?`)
	assert.Contains(t, out, "score 10, 2 answers, asked by carol")
	assert.Contains(t, out, "tags: go, http")
	assert.Contains(t, out, "link: https://stackoverflow.com/q/42")
	assert.Contains(t, out, "Some code here")
	assert.Contains(t, out, "Second paragraph")
	assert.NotContains(t, out, "<p>")
}

func TestShowCommand_JSON(t *testing.T) {
	c := newHTTPContainer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(oneQuestion))
	})

	out, err := execute(t, c, "show", "42", "-o", "json")

	require.NoError(t, err)
	var got domain.QuestionDetails
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(42), got.ID)
	assert.Contains(t, got.Body, "<code>code</code>")
}

func TestShowCommand_YAMLInlinesQuestion(t *testing.T) {
	c := newHTTPContainer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(oneQuestion))
	})

	out, err := execute(t, c, "show", "42", "-o", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "id: 42\n")
	assert.Contains(t, out, "body: ")
	assert.NotContains(t, out, "question:")
}

func TestShowCommand_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		body    string
		args    []string
	}{
		{name: "not found", args: []string{"show", "7"}, body: `{"items":[]}`, wantErr: domain.ErrServerError},
		{name: "invalid id", args: []string{"show", "abc"}, wantErr: domain.ErrInvalidQuestionID},
		{name: "zero id", args: []string{"show", "0"}, wantErr: domain.ErrInvalidQuestionID},
		{name: "unknown format", args: []string{"show", "1", "-o", "table"}, wantErr: domain.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newHTTPContainer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := execute(t, c, tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseQuestionID(t *testing.T) {
	id, err := parseQuestionID("#123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)

	_, err = parseQuestionID("0")
	assert.ErrorIs(t, err, domain.ErrInvalidQuestionID)
}
