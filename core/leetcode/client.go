package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// favoriteQuestionListQuery mirrors the request the LeetCode web app issues
// when a favorite list is opened in the browser.
const favoriteQuestionListQuery = `
query favoriteQuestionList(
    $favoriteSlug: String!,
    $sortBy: QuestionSortByInput,
    $version: String = "v2"
) {
    favoriteQuestionList(
        favoriteSlug: $favoriteSlug,
        sortBy: $sortBy
        version: $version
    ) {
        questions {
            title
            titleSlug
            difficulty
        }
    }
}`

const (
	sortFieldCustom = "CUSTOM"
	sortAscending   = "ASCENDING"
)

// Question is a single entry of a curated list.
type Question struct {
	Title      string `json:"title"`
	TitleSlug  string `json:"titleSlug"`
	Difficulty string `json:"difficulty"`
}

// Fetcher retrieves the current contents of a curated list.
type Fetcher interface {
	FetchFavoriteQuestions(ctx context.Context, slug FavoriteSlug) ([]Question, error)
}

// Client implements Fetcher against the LeetCode GraphQL endpoint.
type Client struct {
	endpoint   string
	baseURL    string
	session    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client from configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		session:    cfg.Session,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger:     logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type favoriteQuestionListResponse struct {
	Data *struct {
		FavoriteQuestionList *struct {
			Questions []Question `json:"questions"`
		} `json:"favoriteQuestionList"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// FetchFavoriteQuestions returns every question in the named list, in the
// list's custom order.
func (c *Client) FetchFavoriteQuestions(ctx context.Context, slug FavoriteSlug) ([]Question, error) {
	payload := graphQLRequest{
		Query: favoriteQuestionListQuery,
		Variables: map[string]any{
			"favoriteSlug": slug.String(),
			"sortBy": map[string]string{
				"sortField": sortFieldCustom,
				"sortOrder": sortAscending,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &FetchError{Slug: slug, Reason: "marshal graphql payload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{Slug: slug, Reason: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", c.baseURL)
	req.Header.Set("Cookie", "LEETCODE_SESSION="+c.session)

	c.logger.Debug("Querying favorite question list",
		zap.String("endpoint", c.endpoint),
		zap.String("favorite_slug", slug.String()),
		zap.Bool("session_set", c.session != ""),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Slug: slug, Reason: "perform request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &FetchError{
			Slug:       slug,
			StatusCode: resp.StatusCode,
			Reason:     fmt.Sprintf("unexpected status: %s", strings.TrimSpace(string(data))),
		}
	}

	questions, decodeErr := decodeQuestions(resp.Body)
	if decodeErr != nil {
		decodeErr.Slug = slug
		decodeErr.StatusCode = resp.StatusCode
		return nil, decodeErr
	}

	c.logger.Debug("Fetched favorite question list",
		zap.String("favorite_slug", slug.String()),
		zap.Int("count", len(questions)),
	)

	return questions, nil
}

// DecodeFavoriteQuestionList parses a favoriteQuestionList GraphQL response body.
func DecodeFavoriteQuestionList(r io.Reader) ([]Question, error) {
	questions, err := decodeQuestions(r)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func decodeQuestions(r io.Reader) ([]Question, *FetchError) {
	var gqlResp favoriteQuestionListResponse
	if err := json.NewDecoder(r).Decode(&gqlResp); err != nil {
		return nil, &FetchError{Reason: "decode response", Err: err}
	}

	if len(gqlResp.Errors) > 0 {
		return nil, &FetchError{Reason: "graphql error: " + gqlResp.Errors[0].Message}
	}

	if gqlResp.Data == nil || gqlResp.Data.FavoriteQuestionList == nil || gqlResp.Data.FavoriteQuestionList.Questions == nil {
		return nil, &FetchError{Reason: "response missing data.favoriteQuestionList.questions"}
	}

	return gqlResp.Data.FavoriteQuestionList.Questions, nil
}

// BaseURL returns the site root used to build problem links.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ProblemURL returns the public problem page for a title slug.
func ProblemURL(baseURL, titleSlug string) string {
	return strings.TrimRight(baseURL, "/") + "/problems/" + titleSlug
}
