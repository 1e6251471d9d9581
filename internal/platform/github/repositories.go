package github

import (
	"context"
	"net/http"

	"github.com/imamik/ghlabels/internal/label"
)

// GetRepository returns one repository. A missing repository yields ErrNotFound.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (label.Repository, error) {
	var r label.Repository
	err := c.do(ctx, "get_repository", http.MethodGet, c.endpoint("repos", owner, repo), nil, &r)
	if err != nil {
		return label.Repository{}, err
	}
	return r, nil
}

// ListOrgRepositories returns the repositories of an organization.
// An owner without an organization account has no organization repositories,
// so a 404 yields an empty list rather than an error.
func (c *Client) ListOrgRepositories(ctx context.Context, owner string) ([]label.Repository, error) {
	repos, err := c.listRepositories(ctx, "list_org_repositories", c.endpoint("orgs", owner, "repos"))
	if IsNotFound(err) {
		return []label.Repository{}, nil
	}
	return repos, err
}

// ListUserRepositories returns the repositories owned by a user account.
func (c *Client) ListUserRepositories(ctx context.Context, owner string) ([]label.Repository, error) {
	return c.listRepositories(ctx, "list_user_repositories", c.endpoint("users", owner, "repos"))
}

func (c *Client) listRepositories(ctx context.Context, operation, target string) ([]label.Repository, error) {
	var repos []label.Repository
	if err := c.do(ctx, operation, http.MethodGet, withPageSize(target), nil, &repos); err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []label.Repository{}
	}
	return repos, nil
}
