package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/dmitrijs2005/emergencyhelp/internal/jsonx"
)

// HTTPClient implements Client over the backend's JSON REST API.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

// NewHTTPClient builds a client for the API rooted at baseURL. tokens may be
// nil for a client that never authenticates.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) (*HTTPClient, error) {
	return newHTTPClient(baseURL, timeout, tokens, nil)
}

func newHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, base http.RoundTripper) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: newAuthTransport(base, tokens),
		},
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (*models.Page, error) {
	q := url.Values{"page": {strconv.Itoa(page)}}

	var resp models.Page
	if err := c.do(ctx, http.MethodGet, "/user/allUsers", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListNearbyUsers(ctx context.Context, latitude, longitude float64, page int) (*models.Page, error) {
	q := url.Values{
		"latitude":  {strconv.FormatFloat(latitude, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(longitude, 'f', -1, 64)},
		"page":      {strconv.Itoa(page)},
	}

	var resp models.Page
	if err := c.do(ctx, http.MethodGet, "/user/getNearbyUsers", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	var resp models.User
	if err := c.do(ctx, http.MethodGet, "/user/userDataById", url.Values{"id": {id}}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, form models.UserForm) (*models.User, error) {
	var resp models.User
	if err := c.do(ctx, http.MethodPost, "/user/createUser", nil, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, form models.UserForm) (*models.User, error) {
	var resp models.User
	if err := c.do(ctx, http.MethodPut, "/user/userById", url.Values{"id": {id}}, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/user/userById", url.Values{"id": {id}}, nil, nil)
}

// do sends one request. body, when non-nil, is encoded as JSON; out, when
// non-nil, receives the decoded 2xx response.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := jsonx.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := jsonx.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload struct {
		Message string `json:"message"`
	}
	if len(b) > 0 && jsonx.Unmarshal(b, &payload) == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
