// Package github fetches curriculum files from a GitHub repository
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

// DefaultRepository is the upstream repository holding the curriculum content
const DefaultRepository = "theodinproject/curriculum"

// Client reads file contents through the GitHub contents API
type Client struct {
	gh     *gogithub.Client
	logger *zap.Logger
}

// Options configures a Client
type Options struct {
	// Token is an optional personal access token; anonymous requests are heavily rate limited
	Token string
	// BaseURL overrides the API endpoint (GitHub Enterprise or tests)
	BaseURL string
	// Timeout bounds a single API call; zero means no timeout
	Timeout time.Duration
}

// NewClient creates a new GitHub content client
func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	gh := gogithub.NewClient(&http.Client{Timeout: opts.Timeout})
	if opts.Token != "" {
		gh = gh.WithAuthToken(opts.Token)
	}

	if opts.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL: %w", err)
		}
		gh.BaseURL = baseURL
	}

	return &Client{
		gh:     gh,
		logger: logger,
	}, nil
}

// Contents returns the base64 encoded content of the file at path in repository.
//
// "repository" has the "owner/name" form. Any error returned by the API is passed through wrapped.
func (c *Client) Contents(ctx context.Context, repository, path string) (string, error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" {
		return "", fmt.Errorf("invalid repository %q, expected owner/name", repository)
	}
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "", fmt.Errorf("content path is required")
	}

	file, _, resp, err := c.gh.Repositories.GetContents(ctx, owner, name, path, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get contents of %s: %w", path, err)
	}
	if file == nil {
		return "", fmt.Errorf("failed to get contents of %s: path is a directory", path)
	}

	if resp != nil && resp.Rate.Limit > 0 {
		c.logger.Debug("fetched curriculum file",
			zap.String("repository", repository),
			zap.String("path", path),
			zap.Int("rate_remaining", resp.Rate.Remaining),
		)
	}

	if encoding := file.GetEncoding(); encoding != "" && encoding != "base64" {
		return "", fmt.Errorf("failed to get contents of %s: unsupported encoding %q", path, encoding)
	}
	if file.Content == nil {
		return "", fmt.Errorf("failed to get contents of %s: empty payload", path)
	}

	return *file.Content, nil
}
