package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/uvm-dev/uvm/pkg/status"
)

const defaultAPIBase = "https://api.github.com"

// GitHub implements Index against the GitHub releases API
type GitHub struct {
	client  *http.Client
	baseURL string
	token   string
}

// GitHubOption customizes the GitHub index client
type GitHubOption func(*GitHub)

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(c *http.Client) GitHubOption {
	return func(g *GitHub) {
		if c != nil {
			g.client = c
		}
	}
}

// WithBaseURL points the client at a different API endpoint, used by tests
func WithBaseURL(u string) GitHubOption {
	return func(g *GitHub) {
		if u != "" {
			g.baseURL = u
		}
	}
}

// WithToken authenticates API calls, raising the rate limit ceiling
func WithToken(token string) GitHubOption {
	return func(g *GitHub) {
		g.token = token
	}
}

// NewGitHub builds a GitHub release index client
func NewGitHub(opts ...GitHubOption) *GitHub {
	g := &GitHub{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultAPIBase,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// FetchReleases lists the published releases of repo, newest first as
// reported by the API. Transport and decode failures surface as network
// errors; an exhausted rate limit is reported as its own condition so
// the user is told to wait or authenticate rather than retry blindly.
func (g *GitHub) FetchReleases(ctx context.Context, repo string) ([]Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases?per_page=100", g.baseURL, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, status.ErrNetwork.Wrap(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, status.ErrNetwork.Wrap(errors.Wrap(err, "querying release index"))
	}
	defer resp.Body.Close()

	if rateLimited(resp) {
		return nil, status.ErrRateLimited.WrapMessage("resets at %s", resp.Header.Get("X-RateLimit-Reset"))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, status.ErrNetwork.WrapMessage("release index returned HTTP %d", resp.StatusCode)
	}

	var releases []Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, status.ErrNetwork.Wrap(errors.Wrap(err, "malformed release index response"))
	}
	return releases, nil
}

// rateLimited recognizes the two shapes GitHub uses for an exhausted
// quota: 429, or 403 with the remaining-requests header at zero.
func rateLimited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"
}
