package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is where the portal backend listens in development.
	DefaultBaseURL = "http://localhost:5000"

	maxBodyBytes    = 4 << 20
	maxErrorBody    = 256
	requestIDHeader = "X-Request-ID"
)

// RequestEvent describes one completed API call.
type RequestEvent struct {
	RequestID    string
	Method       string
	Path         string
	StatusCode   int // 0 on transport failure
	Latency      time.Duration
	Success      bool
	ErrorMessage string
	At           time.Time
}

// Recorder receives an event for every request the client makes.
type Recorder interface {
	RecordRequest(ctx context.Context, ev RequestEvent) error
}

// Client is a thin typed wrapper over the portal's REST API. It never
// retries; errors are logged and returned to the caller unchanged.
type Client struct {
	baseURL  string
	http     *http.Client
	log      *zap.Logger
	validate bool
	recorder Recorder
}

var _ Portal = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithValidation toggles JSON schema validation of response bodies.
func WithValidation(on bool) Option {
	return func(c *Client) { c.validate = on }
}

// WithRecorder attaches a request recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		log:      zap.NewNop(),
		validate: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RecentSession returns the latest study session, or nil when the learner
// has not studied yet.
func (c *Client) RecentSession(ctx context.Context) (*RecentSession, error) {
	var out *RecentSession
	if err := c.get(ctx, "/api/v1/dashboard/recent-session", nil, RecentSessionSchema, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns the dashboard statistics.
func (c *Client) Stats(ctx context.Context) (*StudyStats, error) {
	var out StudyStats
	if err := c.get(ctx, "/api/v1/dashboard/stats", nil, StudyStatsSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Words returns one sorted page of vocabulary.
func (c *Client) Words(ctx context.Context, q WordsQuery) (*Page[Word], error) {
	var out Page[Word]
	if err := c.get(ctx, "/api/v1/words", sortedPageParams(q.Page, "sort_key", q.SortKey, "sort_direction", q.SortDirection), WordPageSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Word returns a single word.
func (c *Client) Word(ctx context.Context, id int) (*Word, error) {
	var out Word
	if err := c.get(ctx, "/api/v1/words/"+strconv.Itoa(id), nil, WordSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudySessions returns one page of study sessions.
func (c *Client) StudySessions(ctx context.Context, q SessionsQuery) (*Page[StudySession], error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.ItemsPerPage > 0 {
		params.Set("items_per_page", strconv.Itoa(q.ItemsPerPage))
	}

	const path = "/api/v1/study-sessions"
	var out Page[StudySession]
	if err := c.get(ctx, path, params, SessionPageSchema, &out); err != nil {
		return nil, err
	}
	if q.ItemsPerPage > 0 && len(out.Items) > q.ItemsPerPage {
		err := &InvalidResponseError{
			Path: path,
			Err:  fmt.Errorf("page holds %d items, requested at most %d", len(out.Items), q.ItemsPerPage),
		}
		c.log.Error("page size exceeded", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return &out, nil
}

// StudySession returns a single study session.
func (c *Client) StudySession(ctx context.Context, id int) (*StudySession, error) {
	var out StudySession
	if err := c.get(ctx, "/api/v1/study-sessions/"+strconv.Itoa(id), nil, SessionSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Groups returns one sorted page of word groups.
func (c *Client) Groups(ctx context.Context, q GroupsQuery) (*Page[Group], error) {
	var out Page[Group]
	if err := c.get(ctx, "/api/v1/groups", sortedPageParams(q.Page, "sort_by", q.SortKey, "order", q.SortDirection), GroupPageSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Group returns a single word group.
func (c *Client) Group(ctx context.Context, id int) (*Group, error) {
	var out Group
	if err := c.get(ctx, "/api/v1/groups/"+strconv.Itoa(id), nil, GroupSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GroupWords returns one sorted page of the words in a group.
func (c *Client) GroupWords(ctx context.Context, groupID int, q WordsQuery) (*Page[Word], error) {
	path := "/api/v1/groups/" + strconv.Itoa(groupID) + "/words"
	var out Page[Word]
	if err := c.get(ctx, path, sortedPageParams(q.Page, "sort_key", q.SortKey, "sort_direction", q.SortDirection), WordPageSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudyActivities returns every launchable study activity.
func (c *Client) StudyActivities(ctx context.Context) ([]StudyActivity, error) {
	var out []StudyActivity
	if err := c.get(ctx, "/api/v1/study-activities", nil, ActivityListSchema, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StudyActivity returns a single study activity.
func (c *Client) StudyActivity(ctx context.Context, id int) (*StudyActivity, error) {
	var out StudyActivity
	if err := c.get(ctx, "/api/v1/study-activities/"+strconv.Itoa(id), nil, ActivitySchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func sortedPageParams(page int, keyParam, key, dirParam string, dir SortDirection) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if key != "" {
		params.Set(keyParam, key)
	}
	if dir != "" {
		params.Set(dirParam, string(dir))
	}
	return params
}

// get performs a GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, schema *Schema, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	ev := RequestEvent{
		RequestID: uuid.NewString(),
		Method:    http.MethodGet,
		Path:      path,
		At:        time.Now(),
	}
	log := c.log.With(zap.String("request_id", ev.RequestID), zap.String("path", path))

	err := c.do(ctx, target, schema, out, &ev)

	ev.Latency = time.Since(ev.At)
	ev.Success = err == nil
	if err != nil {
		ev.ErrorMessage = err.Error()
		log.Error("api request failed", zap.Int("status", ev.StatusCode), zap.Duration("latency", ev.Latency), zap.Error(err))
	} else {
		log.Debug("api request", zap.Int("status", ev.StatusCode), zap.Duration("latency", ev.Latency))
	}

	// A broken recorder must not fail the request.
	if c.recorder != nil {
		if recErr := c.recorder.RecordRequest(ctx, ev); recErr != nil {
			log.Warn("record request failed", zap.Error(recErr))
		}
	}
	return err
}

func (c *Client) do(ctx context.Context, target string, schema *Schema, out any, ev *RequestEvent) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, ev.RequestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	ev.StatusCode = resp.StatusCode

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := strings.TrimSpace(string(body))
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return &HTTPError{
			Method:     http.MethodGet,
			Path:       ev.Path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       excerpt,
		}
	}

	if c.validate {
		if err := validateBody(schema, ev.Path, body); err != nil {
			return err
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &InvalidResponseError{Path: ev.Path, Content: body, Err: err}
	}
	return nil
}
