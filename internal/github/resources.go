// Package github talks to the GitHub REST API on behalf of the service:
// organizations of the current user, their repositories and issues.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// Resource is a fetched response: its status and raw JSON body.
type Resource struct {
	StatusCode int
	Body       []byte
}

// Resources fetches JSON resources. Implementations do not retry.
type Resources interface {
	Get(ctx context.Context, uri string) (Resource, error)
}

// JSONResources fetches resources over HTTP, authenticated with a bearer token.
type JSONResources struct {
	client *http.Client
}

var _ Resources = (*JSONResources)(nil)

// NewJSONResources returns Resources authenticated with token. An empty token
// gives an anonymous client.
func NewJSONResources(ctx context.Context, token string) *JSONResources {
	if token == "" {
		return &JSONResources{client: http.DefaultClient}
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return &JSONResources{client: oauth2.NewClient(ctx, src)}
}

// NewJSONResourcesWithClient uses client as is.
func NewJSONResourcesWithClient(client *http.Client) *JSONResources {
	return &JSONResources{client: client}
}

func (r *JSONResources) Get(ctx context.Context, uri string) (Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return Resource{}, fmt.Errorf("build request for %s: %w", uri, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Resource{}, fmt.Errorf("get %s: %w", uri, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Resource{}, fmt.Errorf("read %s: %w", uri, err)
	}
	return Resource{StatusCode: resp.StatusCode, Body: body}, nil
}
