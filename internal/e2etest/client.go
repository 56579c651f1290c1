package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/justinas/nosurf"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/myrjola/findmoney/internal/game"
	"github.com/myrjola/findmoney/internal/session"
	"io"
	"net/http"
	"time"
)

// StatusError is returned when the server answers with an unexpected status code.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// Client plays the game through the HTTP API. It keeps the session and CSRF cookies between calls.
type Client struct {
	client    *http.Client
	url       string
	csrfToken string
}

// NewClient creates a client for the server at url.
func NewClient(url string) (*Client, error) {
	jar, err := newPlainHTTPJar()
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}
	return &Client{
		client:    &http.Client{Jar: jar}, //nolint:exhaustruct // defaults
		url:       url,
		csrfToken: "",
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetDoc fetches a URL and returns a goquery document.
func (c *Client) GetDoc(ctx context.Context, urlPath string) (*goquery.Document, error) {
	var (
		err  error
		resp *http.Response
		doc  *goquery.Document
	)
	if resp, err = c.Get(ctx, urlPath); err != nil {
		return nil, errors.Wrap(err, "client get")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if err = checkStatus(resp); err != nil {
		return nil, err
	}
	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, errors.Wrap(err, "create document from reader")
	}
	return doc, nil
}

// CSRFToken fetches the token the state-changing endpoints require. The token is cached.
func (c *Client) CSRFToken(ctx context.Context) (string, error) {
	if c.csrfToken != "" {
		return c.csrfToken, nil
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := c.getJSON(ctx, "/api/csrf", &body); err != nil {
		return "", errors.Wrap(err, "get CSRF token")
	}
	if body.Token == "" {
		return "", errors.New("empty CSRF token")
	}
	c.csrfToken = body.Token
	return c.csrfToken, nil
}

// NewGame starts a game for the client's session.
func (c *Client) NewGame(ctx context.Context, seed string, lockRooms bool) (session.Summary, error) {
	var summary session.Summary
	in := map[string]any{"seed": seed, "lockRooms": lockRooms}
	if err := c.postJSON(ctx, "/api/games", in, &summary); err != nil {
		return session.Summary{}, errors.Wrap(err, "post game")
	}
	return summary, nil
}

// CurrentGame returns the summary of the session's game.
func (c *Client) CurrentGame(ctx context.Context) (session.Summary, error) {
	var summary session.Summary
	if err := c.getJSON(ctx, "/api/games/current", &summary); err != nil {
		return session.Summary{}, errors.Wrap(err, "get current game")
	}
	return summary, nil
}

// ExploreRoom runs one explore-room step.
func (c *Client) ExploreRoom(
	ctx context.Context,
	process game.Process,
	roomCode int,
	userInput string,
) (game.Result, error) {
	var result game.Result
	in := map[string]any{"process": process, "roomCode": roomCode, "userInput": userInput}
	if err := c.postJSON(ctx, "/api/explore-room", in, &result); err != nil {
		return game.Result{}, errors.Wrap(err, "post explore room")
	}
	return result, nil
}

// ExploreFurniture runs one explore-furniture call.
func (c *Client) ExploreFurniture(
	ctx context.Context,
	process game.Process,
	furnitureCode int,
	userInput string,
) (game.Result, error) {
	var result game.Result
	in := map[string]any{"process": process, "furnitureCode": furnitureCode, "userInput": userInput}
	if err := c.postJSON(ctx, "/api/explore-furniture", in, &result); err != nil {
		return game.Result{}, errors.Wrap(err, "post explore furniture")
	}
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, urlPath string, out any) error {
	resp, err := c.Get(ctx, urlPath)
	if err != nil {
		return errors.Wrap(err, "client get")
	}
	return decodeResponse(resp, out)
}

func (c *Client) postJSON(ctx context.Context, urlPath string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	var resp *http.Response
	if resp, err = c.Post(ctx, urlPath, bytes.NewReader(body)); err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// Post sends body as JSON together with the CSRF token and returns the response.
func (c *Client) Post(ctx context.Context, urlPath string, body io.Reader) (*http.Response, error) {
	csrfToken, err := c.CSRFToken(ctx)
	if err != nil {
		return nil, err
	}
	var req *http.Request
	if req, err = c.newRequestWithContext(ctx, http.MethodPost, urlPath, body); err != nil {
		return nil, errors.Wrap(err, "new request with context")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(nosurf.HeaderName, csrfToken)
	var resp *http.Response
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

func decodeResponse(resp *http.Response, out any) error {
	defer func() {
		_ = resp.Body.Close()
	}()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10)) //nolint:mnd // enough for an error page
	return &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
}

// newRequestWithContext creates a new HTTP request to the server that respects the given context.
func (c *Client) newRequestWithContext(
	ctx context.Context,
	method, urlPath string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	return req, nil
}
