// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/imamik/ghlabels/internal/config"
	"github.com/imamik/ghlabels/internal/label"
	"github.com/imamik/ghlabels/internal/metrics"
	"github.com/imamik/ghlabels/internal/orchestration"
	"github.com/imamik/ghlabels/internal/platform/github"
	"github.com/imamik/ghlabels/internal/platform/s3"
	"github.com/imamik/ghlabels/internal/reconcile"
	"github.com/imamik/ghlabels/internal/template"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newGateway creates the GitHub API client.
	newGateway = func(s *config.Settings) (orchestration.Gateway, error) {
		return github.NewClient(s.Endpoint, s.Token,
			github.WithTimeout(s.Timeout),
			github.WithUserAgent("ghlabels/"+version),
		)
	}

	// newObjectStore creates the object storage client for s3:// templates.
	newObjectStore = func(ctx context.Context, s config.S3Settings) (template.ObjectStore, error) {
		return s3.NewClient(ctx, s3.Options{
			Endpoint:  s.Endpoint,
			Region:    s.Region,
			AccessKey: s.AccessKey,
			SecretKey: s.SecretKey,
		})
	}

	// isInteractive reports whether the user can answer a prompt.
	isInteractive = isInteractiveTTY

	// confirmChanges asks the user to approve the planned changes.
	confirmChanges = confirmWithForm

	// writeMetrics exports the run's metrics.
	writeMetrics = metrics.WriteTextfile
)

// version is reported in the User-Agent header.
var version = "dev"

// SetVersion sets the version used in API requests.
func SetVersion(v string) {
	version = v
}

// ScopeFrom extracts the targeting part of the settings.
func ScopeFrom(s *config.Settings) orchestration.Scope {
	return orchestration.Scope{Owner: s.Owner, Repo: s.Repo, Owners: s.Owners}
}

// FlagsFrom extracts the reconciliation flags from the settings.
func FlagsFrom(s *config.Settings) reconcile.Flags {
	return reconcile.Flags{DryRun: s.DryRun, NoCreate: s.NoCreate, NoDelete: s.NoDelete}
}

// Apply reconciles the labels of every repository in scope with the template.
//
// The workflow:
//  1. Validates settings and scope, then loads the label template
//  2. Resolves the target repositories
//  3. Plans every repository concurrently
//  4. Asks for confirmation when running interactively
//  5. Applies the plans and writes the report to out
//
// Per-repository and per-label failures are part of the report; Apply then
// returns an error carrying the failure count.
func Apply(ctx context.Context, s *config.Settings, out io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	scope := ScopeFrom(s)
	if err := scope.Validate(); err != nil {
		return err
	}

	ctx = logr.NewContext(ctx, newLogger(s.Verbose))
	logger := logr.FromContextOrDiscard(ctx)

	desired, err := loadTemplate(ctx, s)
	if err != nil {
		return err
	}
	logger.V(1).Info("loaded label template", "file", s.File, "labels", len(desired))

	gateway, err := newGateway(s)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	fleet := orchestration.NewFleet(gateway, FlagsFrom(s))

	repos, err := fleet.Resolve(ctx, scope)
	if err != nil {
		return err
	}

	plans := fleet.Plan(ctx, repos, desired)

	report, confirmed, err := execute(ctx, fleet, plans, s)
	if err != nil {
		return err
	}

	if err := renderReport(out, report, s.Output, s.DryRun || !confirmed); err != nil {
		return err
	}

	if s.MetricsFile != "" {
		if err := writeMetrics(s.MetricsFile); err != nil {
			return err
		}
	}

	summary := report.Summary()
	logger.Info("reconciliation finished",
		"repositories", summary.Repositories,
		"create", summary.Create,
		"update", summary.Update,
		"delete", summary.Delete,
		"failed", summary.Failed)

	if n := report.Failures(); n > 0 {
		return fmt.Errorf("%d operation(s) failed", n)
	}
	return nil
}

// execute applies the plans, or previews them when the user declines.
func execute(ctx context.Context, fleet *orchestration.Fleet, plans []orchestration.RepoPlan, s *config.Settings) (orchestration.Report, bool, error) {
	if s.DryRun || s.Yes || !isInteractive() {
		return fleet.Apply(ctx, plans), true, nil
	}

	summary := orchestration.Summarize(plans)
	if summary.Changes() == 0 {
		return fleet.Apply(ctx, plans), true, nil
	}

	ok, err := confirmChanges(ctx, summary)
	if err != nil {
		return orchestration.Report{}, false, err
	}
	if !ok {
		return fleet.Preview(ctx, plans), false, nil
	}
	return fleet.Apply(ctx, plans), true, nil
}

// loadTemplate reads the desired labels, from object storage when the file
// is an s3:// location.
func loadTemplate(ctx context.Context, s *config.Settings) ([]label.Label, error) {
	loader := &template.Loader{}

	if s3.IsURL(s.File) {
		objects, err := newObjectStore(ctx, s.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to create object storage client: %w", err)
		}
		loader.Objects = objects
	}

	return loader.Load(ctx, s.File)
}
