package pullrequest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const clientTimeout = 30 * time.Second

// NewGitHubClient returns a go-github client authenticated with token when one
// is supplied. apiURL selects a GitHub Enterprise endpoint; empty means github.com.
func NewGitHubClient(token, apiURL string) (*github.Client, error) {
	var client *github.Client
	if token == "" {
		client = github.NewClient(&http.Client{Timeout: clientTimeout})
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc := oauth2.NewClient(context.Background(), ts)
		tc.Timeout = clientTimeout
		client = github.NewClient(tc)
	}

	if apiURL = strings.TrimSpace(apiURL); apiURL == "" {
		return client, nil
	}
	enterprise, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("configure github api url %q: %w", apiURL, err)
	}
	return enterprise, nil
}
