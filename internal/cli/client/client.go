// Package client is the HTTP client the CLI uses to talk to the server.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/cli/types"
)

// APIClient wraps a Hertz client for talking to the management server.
type APIClient struct {
	client *client.Client
	server string
	token  string
}

// NewAPIClient creates a client for the given server. token may be
// empty for the login call.
func NewAPIClient(server, token string) (*APIClient, error) {
	normalized, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalized,
		token:  token,
	}, nil
}

// normalizeServerURL ensures the server address has a scheme and no
// trailing path.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}
	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Login authenticates and returns the login payload.
func (c *APIClient) Login(ctx context.Context, username, password string) (*types.LoginData, error) {
	body, err := sonic.Marshal(types.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var resp types.APIResponse[types.LoginData]
	if err := c.do(ctx, consts.MethodPost, endpointLogin, body, &resp); err != nil {
		return nil, err
	}
	if resp.Code != 200 {
		return nil, fmt.Errorf("login failed: %s", resp.Message)
	}
	return &resp.Data, nil
}

// Logout revokes the client's token on the server.
func (c *APIClient) Logout(ctx context.Context) error {
	var resp types.APIResponse[any]
	if err := c.do(ctx, consts.MethodPost, endpointLogout, nil, &resp); err != nil {
		return err
	}
	if resp.Code != 200 {
		return fmt.Errorf("logout failed: %s", resp.Message)
	}
	return nil
}

// ListProjects lists all live projects.
func (c *APIClient) ListProjects(ctx context.Context) ([]types.Project, error) {
	var resp types.APIResponse[[]types.Project]
	if err := c.do(ctx, consts.MethodGet, endpointProjects, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Code != 200 {
		return nil, fmt.Errorf("list projects failed: %s", resp.Message)
	}
	return resp.Data, nil
}

// CreateProject creates a project.
func (c *APIClient) CreateProject(ctx context.Context, id, name string) (*types.Project, error) {
	body, err := sonic.Marshal(types.CreateProjectRequest{ID: id, Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var resp types.APIResponse[types.Project]
	if err := c.do(ctx, consts.MethodPost, endpointProjects, body, &resp); err != nil {
		return nil, err
	}
	if resp.Code != 200 && resp.Code != 201 {
		return nil, fmt.Errorf("create project failed: %s", resp.Message)
	}
	return &resp.Data, nil
}

// ListApis lists API definitions, scoped to a project when projectID
// is not empty.
func (c *APIClient) ListApis(ctx context.Context, projectID string) ([]types.Api, error) {
	endpoint := endpointApis
	if projectID != "" {
		endpoint = fmt.Sprintf(endpointProjectApis, projectID)
	}

	var resp types.APIResponse[[]types.Api]
	if err := c.do(ctx, consts.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Code != 200 {
		return nil, fmt.Errorf("list apis failed: %s", resp.Message)
	}
	return resp.Data, nil
}

func (c *APIClient) do(ctx context.Context, method, endpoint string, body []byte, out interface{}) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(c.server + endpoint)
	req.Header.Set("platform", "api")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(body)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	switch resp.StatusCode() {
	case 200:
	case 401:
		return fmt.Errorf("authentication required, run 'uapictl login'")
	default:
		return fmt.Errorf("request failed with HTTP status: %d", resp.StatusCode())
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
