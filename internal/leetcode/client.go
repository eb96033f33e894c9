// Package leetcode fetches problem metadata from the LeetCode GraphQL API.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
)

// DefaultEndpoint is the public GraphQL endpoint.
const DefaultEndpoint = "https://leetcode.com/graphql"

// DefaultTimeout bounds a single request.
const DefaultTimeout = 15 * time.Second

// searchLimit is the page size used to map a numeric id to a slug.
const searchLimit = 50

const questionQuery = `query questionData($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionFrontendId
    title
    titleSlug
    difficulty
    content
    isPaidOnly
    codeSnippets {
      langSlug
      code
    }
  }
}`

const searchQuery = `query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
  problemsetQuestionList: questionList(categorySlug: $categorySlug, limit: $limit, skip: $skip, filters: $filters) {
    total: totalNum
    questions: data {
      frontendQuestionId: questionFrontendId
      title
      titleSlug
    }
  }
}`

// Client is a problem.Source backed by the LeetCode GraphQL API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ problem.Source = (*Client)(nil)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a client for endpoint. An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the GraphQL endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type question struct {
	FrontendID   string    `mapstructure:"questionFrontendId"`
	Title        string    `mapstructure:"title"`
	Slug         string    `mapstructure:"titleSlug"`
	Difficulty   string    `mapstructure:"difficulty"`
	Content      string    `mapstructure:"content"`
	PaidOnly     bool      `mapstructure:"isPaidOnly"`
	CodeSnippets []snippet `mapstructure:"codeSnippets"`
}

type snippet struct {
	LangSlug string `mapstructure:"langSlug"`
	Code     string `mapstructure:"code"`
}

type questionList struct {
	Total     int `mapstructure:"total"`
	Questions []struct {
		FrontendID string `mapstructure:"frontendQuestionId"`
		Title      string `mapstructure:"title"`
		Slug       string `mapstructure:"titleSlug"`
	} `mapstructure:"questions"`
}

// Fetch resolves a numeric id or a slug to a problem record.
func (c *Client) Fetch(ctx context.Context, identifier string) (*problem.Problem, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, c.notFound(identifier)
	}

	slug := strings.ToLower(identifier)
	if id, ok := problem.ParseID(identifier); ok {
		var err error
		if slug, err = c.lookupSlug(ctx, id); err != nil {
			return nil, err
		}
	}

	var data struct {
		Question *question `mapstructure:"question"`
	}
	if err := c.query(ctx, "questionData", questionQuery, map[string]any{"titleSlug": slug}, &data); err != nil {
		return nil, err
	}
	if data.Question == nil {
		return nil, c.notFound(identifier)
	}

	return toProblem(data.Question)
}

// lookupSlug maps a frontend id to its slug through a keyword search.
func (c *Client) lookupSlug(ctx context.Context, id int) (string, error) {
	want := strconv.Itoa(id)
	vars := map[string]any{
		"categorySlug": "",
		"limit":        searchLimit,
		"skip":         0,
		"filters":      map[string]any{"searchKeywords": want},
	}

	var data struct {
		List *questionList `mapstructure:"problemsetQuestionList"`
	}
	if err := c.query(ctx, "problemsetQuestionList", searchQuery, vars, &data); err != nil {
		return "", err
	}

	if data.List != nil {
		for _, q := range data.List.Questions {
			if q.FrontendID == want {
				output.Debug("resolved problem id", "id", id, "slug", q.Slug)
				return q.Slug, nil
			}
		}
	}
	return "", c.notFound(want)
}

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   map[string]any `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// query posts a GraphQL operation and decodes its data into out.
func (c *Client) query(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{OperationName: operation, Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", strings.TrimSuffix(c.endpoint, "/graphql")+"/problemset/")

	output.Debug("graphql request", "operation", operation, "endpoint", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return oerrors.WrapCause(oerrors.ErrUpstream, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return oerrors.WrapCause(oerrors.ErrUpstream, "failed to read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return oerrors.Wrap(oerrors.ErrUpstream, fmt.Sprintf("%s returned %s", operation, resp.Status))
	}

	var result graphqlResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return oerrors.WrapCause(oerrors.ErrUpstream, "failed to unmarshal response", err)
	}
	if len(result.Errors) > 0 && result.Data == nil {
		msgs := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			msgs[i] = e.Message
		}
		return oerrors.Wrap(oerrors.ErrUpstream, fmt.Sprintf("%s: %s", operation, strings.Join(msgs, "; ")))
	}

	if err := mapstructure.Decode(result.Data, out); err != nil {
		return oerrors.WrapCause(oerrors.ErrUpstream, "unexpected response shape", err)
	}
	return nil
}

func (c *Client) notFound(identifier string) error {
	return oerrors.WrapCause(oerrors.ErrUpstream, "leetcode",
		oerrors.NewProblemNotFoundError(identifier, c.endpoint))
}

func toProblem(q *question) (*problem.Problem, error) {
	id, err := strconv.Atoi(q.FrontendID)
	if err != nil || id <= 0 {
		return nil, oerrors.Wrap(oerrors.ErrUpstream,
			fmt.Sprintf("problem %s has non-numeric id %q", q.Slug, q.FrontendID))
	}

	description := HTMLToText(q.Content)
	if description == "" && q.PaidOnly {
		description = "This problem is only available to premium subscribers."
	}

	snippets := make(map[string]string, len(q.CodeSnippets))
	for _, s := range q.CodeSnippets {
		snippets[s.LangSlug] = s.Code
	}

	return &problem.Problem{
		ID:          id,
		Slug:        q.Slug,
		Title:       q.Title,
		Difficulty:  problem.Difficulty(q.Difficulty),
		Description: description,
		Snippets:    snippets,
	}, nil
}
