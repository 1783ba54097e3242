package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/boxpad/boxpad-api/models"
)

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Source backed by the demo API at baseURL. The timeout
// bounds every request; expired requests surface as KindTimeout.
func New(baseURL string, timeout time.Duration) Source {
	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) Users(ctx context.Context) ([]models.RawRecord, error) {
	var out []models.RawRecord
	if err := c.getJSON(ctx, "fetch users", "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) UserByID(ctx context.Context, id int) (models.RawRecord, error) {
	var out models.RawRecord
	if err := c.getJSON(ctx, "fetch user", fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Posts(ctx context.Context) ([]models.RawRecord, error) {
	var out []models.RawRecord
	if err := c.getJSON(ctx, "fetch posts", "/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Comments(ctx context.Context) ([]models.RawRecord, error) {
	var out []models.RawRecord
	if err := c.getJSON(ctx, "fetch comments", "/comments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CommentsByPost(ctx context.Context, postID int) ([]models.RawRecord, error) {
	var out []models.RawRecord
	if err := c.getJSON(ctx, "fetch comments", fmt.Sprintf("/posts/%d/comments", postID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UsersPage fetches a limited user listing from sources that wrap the
// array in an envelope, e.g. {"users": [...]} or {"data": [...]}. A
// missing key degrades to an empty listing, same as the frontend did.
func (c *client) UsersPage(ctx context.Context, key string, limit int) ([]models.RawRecord, error) {
	query := url.Values{"limit": []string{fmt.Sprint(limit)}}
	var envelope map[string]json.RawMessage
	if err := c.getJSON(ctx, "fetch users", "/users", query, &envelope); err != nil {
		return nil, err
	}
	raw, ok := envelope[key]
	if !ok {
		return []models.RawRecord{}, nil
	}
	var out []models.RawRecord
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &Error{Kind: KindMalformed, Op: "fetch users", Err: err}
	}
	return out, nil
}

// getJSON runs one GET against the base URL and decodes the body into v.
// All failures come back as *Error; the response body of a non-2xx is
// never parsed.
func (c *client) getJSON(ctx context.Context, op, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	zap.S().Debugw("upstream request", "op", op, "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &Error{Kind: KindTimeout, Op: op, Err: err}
		}
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindStatus, Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &Error{Kind: KindMalformed, Op: op, Err: err}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
