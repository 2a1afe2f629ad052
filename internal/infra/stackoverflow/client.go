// Package stackoverflow provides an HTTP client for the Stack Exchange questions API.
package stackoverflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/runoshun/stackq/internal/domain"
)

// Ensure Client implements domain.QuestionsAPI.
var _ domain.QuestionsAPI = (*Client)(nil)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 8 << 20

// Transport errors.
var (
	ErrEmptyBody        = errors.New("response body is empty")
	ErrMissingQuestions = errors.New("response has no questions array")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Status     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("stack exchange api returned status %d", e.StatusCode)
}

// Options configures a Client.
type Options struct {
	BaseURL string // API root, e.g. https://api.stackexchange.com/2.2
	Site    string // Site parameter, e.g. stackoverflow
	Key     string // Optional application key
}

// Client talks to the Stack Exchange API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	site    string
	key     string
}

// NewHTTPClient returns the HTTP client shared by all API calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// NewClient creates a new Client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	site := opts.Site
	if site == "" {
		site = domain.DefaultSite
	}
	return &Client{
		http:    httpClient,
		baseURL: opts.BaseURL,
		site:    site,
		key:     opts.Key,
	}
}

type ownerSchema struct {
	DisplayName  string `json:"display_name"`
	ProfileImage string `json:"profile_image"`
}

type questionSchema struct {
	ID               *int64      `json:"id"`
	QuestionID       *int64      `json:"question_id"`
	Title            string      `json:"title"`
	Body             string      `json:"body"`
	Link             string      `json:"link"`
	Tags             []string    `json:"tags"`
	Owner            ownerSchema `json:"owner"`
	LastActivityDate int64       `json:"last_activity_date"`
	Score            int         `json:"score"`
	AnswerCount      int         `json:"answer_count"`
	IsAnswered       bool        `json:"is_answered"`
}

// questionsListSchema accepts both "questions" and the Stack Exchange "items" key.
type questionsListSchema struct {
	Questions []questionSchema `json:"questions"`
	Items     []questionSchema `json:"items"`
}

func (s questionsListSchema) questions() ([]questionSchema, error) {
	if s.Questions != nil {
		return s.Questions, nil
	}
	if s.Items != nil {
		return s.Items, nil
	}
	return nil, ErrMissingQuestions
}

func (q questionSchema) toDomain() domain.Question {
	var id int64
	switch {
	case q.ID != nil:
		id = *q.ID
	case q.QuestionID != nil:
		id = *q.QuestionID
	}
	var lastActivity time.Time
	if q.LastActivityDate > 0 {
		lastActivity = time.Unix(q.LastActivityDate, 0).UTC()
	}
	return domain.Question{
		ID:    id,
		Title: html.UnescapeString(q.Title),
		Owner: domain.Owner{
			DisplayName:  html.UnescapeString(q.Owner.DisplayName),
			ProfileImage: q.Owner.ProfileImage,
		},
		Score:        q.Score,
		AnswerCount:  q.AnswerCount,
		IsAnswered:   q.IsAnswered,
		Tags:         q.Tags,
		Link:         q.Link,
		LastActivity: lastActivity,
	}
}

// LastActiveQuestions fetches the most recently active questions.
func (c *Client) LastActiveQuestions(ctx context.Context, pageSize int) ([]domain.Question, error) {
	query := url.Values{}
	query.Set("order", "desc")
	query.Set("sort", "activity")
	query.Set("pagesize", strconv.Itoa(pageSize))

	list, err := c.getQuestions(ctx, query, "questions")
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(list))
	for _, q := range list {
		questions = append(questions, q.toDomain())
	}
	return questions, nil
}

// QuestionDetails fetches a single question including its body.
func (c *Client) QuestionDetails(ctx context.Context, id int64) (*domain.QuestionDetails, error) {
	query := url.Values{}
	query.Set("filter", "withbody")

	list, err := c.getQuestions(ctx, query, "questions", strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrQuestionNotFound
	}

	return &domain.QuestionDetails{
		Question: list[0].toDomain(),
		Body:     list[0].Body,
	}, nil
}

// getQuestions performs a GET on the given path and decodes the questions array.
func (c *Client) getQuestions(ctx context.Context, query url.Values, path ...string) ([]questionSchema, error) {
	endpoint, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return nil, fmt.Errorf("build request url: %w", err)
	}
	query.Set("site", c.site)
	if c.key != "" {
		query.Set("key", c.key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrEmptyBody
	}

	var body questionsListSchema
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return body.questions()
}
