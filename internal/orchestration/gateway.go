package orchestration

import (
	"context"

	"github.com/imamik/ghlabels/internal/label"
)

// Gateway performs the remote calls a reconciliation run needs.
// *github.Client implements it.
type Gateway interface {
	GetRepository(ctx context.Context, owner, repo string) (label.Repository, error)
	// ListOrgRepositories returns an empty list when the owner has no
	// organization account.
	ListOrgRepositories(ctx context.Context, owner string) ([]label.Repository, error)
	ListUserRepositories(ctx context.Context, owner string) ([]label.Repository, error)
	ListLabels(ctx context.Context, repo label.Repository) ([]label.Label, error)
	CreateLabel(ctx context.Context, l label.Label, repo label.Repository) (label.Label, error)
	UpdateLabel(ctx context.Context, l label.Label) (label.Label, error)
	DeleteLabel(ctx context.Context, l label.Label) error
}
