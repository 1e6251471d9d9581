package orchestration

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/ghlabels/internal/label"
	"github.com/imamik/ghlabels/internal/metrics"
	"github.com/imamik/ghlabels/internal/reconcile"
	"github.com/imamik/ghlabels/internal/util/async"
)

// RepoPlan holds one repository's observed labels and the batch that would
// bring them in line with the desired set.
type RepoPlan struct {
	Repository label.Repository
	Observed   []label.Label
	Batch      reconcile.Batch

	// Err is set when the repository's labels could not be listed.
	Err error
}

// Fleet reconciles labels across every repository of a scope.
type Fleet struct {
	gateway Gateway
	flags   reconcile.Flags
}

// NewFleet creates a fleet orchestrator backed by gateway.
func NewFleet(gateway Gateway, flags reconcile.Flags) *Fleet {
	return &Fleet{gateway: gateway, flags: flags}
}

// Run resolves the scope, plans every repository and applies the plans.
// The only error returned is a failure to determine the target repositories.
func (f *Fleet) Run(ctx context.Context, scope Scope, desired []label.Label) (Report, error) {
	repos, err := f.Resolve(ctx, scope)
	if err != nil {
		return Report{}, err
	}
	return f.Apply(ctx, f.Plan(ctx, repos, desired)), nil
}

// Resolve turns a scope into an ordered, duplicate-free repository list.
func (f *Fleet) Resolve(ctx context.Context, scope Scope) ([]label.Repository, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	logger := logr.FromContextOrDiscard(ctx)
	logger.V(1).Info("resolving repositories", "scope", scope.String())

	var repos []label.Repository
	switch {
	case len(scope.Owners) > 0:
		perOwner, err := async.Map(ctx, scope.ownerList(), f.resolveOwner)
		if err != nil {
			return nil, err
		}
		for _, owned := range perOwner {
			repos = append(repos, owned...)
		}
	case scope.Repo != "":
		repo, err := f.gateway.GetRepository(ctx, scope.Owner, scope.Repo)
		if err != nil {
			return nil, fmt.Errorf("failed to get repository %s/%s: %w", scope.Owner, scope.Repo, err)
		}
		repos = []label.Repository{repo}
	default:
		owned, err := f.resolveOwner(ctx, scope.Owner)
		if err != nil {
			return nil, err
		}
		repos = owned
	}

	repos = dedupe(repos)
	logger.V(1).Info("resolved repositories", "count", len(repos))
	return repos, nil
}

// resolveOwner lists an owner's organization repositories followed by its
// user repositories.
func (f *Fleet) resolveOwner(ctx context.Context, owner string) ([]label.Repository, error) {
	var orgRepos, userRepos []label.Repository

	err := async.RunParallel(ctx, []async.Task{
		{
			Name: "list organization repositories for " + owner,
			Func: func(ctx context.Context) error {
				var err error
				orgRepos, err = f.gateway.ListOrgRepositories(ctx, owner)
				return err
			},
		},
		{
			Name: "list user repositories for " + owner,
			Func: func(ctx context.Context) error {
				var err error
				userRepos, err = f.gateway.ListUserRepositories(ctx, owner)
				return err
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return append(orgRepos, userRepos...), nil
}

// dedupe drops repeated repositories, keeping the first occurrence.
func dedupe(repos []label.Repository) []label.Repository {
	seen := make(map[string]struct{}, len(repos))
	out := make([]label.Repository, 0, len(repos))
	for _, r := range repos {
		if _, ok := seen[r.FullName]; ok {
			continue
		}
		seen[r.FullName] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Plan lists every repository's labels concurrently and diffs them against
// desired. A listing failure is kept on that repository's plan.
func (f *Fleet) Plan(ctx context.Context, repos []label.Repository, desired []label.Label) []RepoPlan {
	return async.Collect(ctx, repos, func(ctx context.Context, repo label.Repository) RepoPlan {
		plan := RepoPlan{Repository: repo}

		observed, err := f.gateway.ListLabels(ctx, repo)
		if err != nil {
			logr.FromContextOrDiscard(ctx).V(1).Info("failed to list labels",
				"repository", repo.FullName, "error", err.Error())
			plan.Err = err
			return plan
		}

		plan.Observed = observed
		plan.Batch = reconcile.Plan(desired, observed, f.flags)
		return plan
	})
}

// Apply executes every plan concurrently and assembles the report in plan
// order.
func (f *Fleet) Apply(ctx context.Context, plans []RepoPlan) Report {
	return f.apply(ctx, plans, f.flags.DryRun)
}

// Preview renders plans as a dry run without calling the gateway.
func (f *Fleet) Preview(ctx context.Context, plans []RepoPlan) Report {
	return f.apply(ctx, plans, true)
}

func (f *Fleet) apply(ctx context.Context, plans []RepoPlan, dryRun bool) Report {
	executor := NewExecutor(f.gateway, dryRun)

	repos := async.Collect(ctx, plans, func(ctx context.Context, plan RepoPlan) RepoReport {
		if plan.Err != nil {
			metrics.RecordRepository(metrics.ResultError)
			return RepoReport{Repository: plan.Repository, Err: plan.Err}
		}
		return executor.Apply(ctx, plan.Repository, plan.Batch)
	})

	return Report{Repositories: repos}
}

// Summarize counts the operations a set of plans would perform.
func Summarize(plans []RepoPlan) Summary {
	s := Summary{Repositories: len(plans)}
	for _, p := range plans {
		switch {
		case p.Err != nil:
			s.Failed++
		case p.Batch.Empty():
			s.Unchanged++
		default:
			s.Create += len(p.Batch.ToCreate)
			s.Update += len(p.Batch.ToUpdate)
			s.Delete += len(p.Batch.ToDelete)
		}
	}
	return s
}
