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

// operation is one planned call, positioned in report order.
type operation struct {
	verb  Verb
	label label.Label
}

// Executor applies one repository's batch.
type Executor struct {
	gateway Gateway
	dryRun  bool
}

// NewExecutor creates an executor. In dry-run mode the gateway is never called.
func NewExecutor(gateway Gateway, dryRun bool) *Executor {
	return &Executor{gateway: gateway, dryRun: dryRun}
}

// Apply runs every operation of the batch concurrently and returns the
// results in create, update, delete order. A failed operation is recorded
// in its Result and does not stop the others.
func (e *Executor) Apply(ctx context.Context, repo label.Repository, batch reconcile.Batch) RepoReport {
	ops := operations(batch)
	report := RepoReport{Repository: repo}

	if len(ops) == 0 {
		metrics.RecordRepository(metrics.ResultSuccess)
		return report
	}

	report.Results = async.Collect(ctx, ops, func(ctx context.Context, op operation) Result {
		return e.run(ctx, repo, op)
	})

	result := metrics.ResultSuccess
	if report.Failures() > 0 {
		result = metrics.ResultError
	}
	metrics.RecordRepository(result)

	return report
}

// operations flattens a batch into report order.
func operations(batch reconcile.Batch) []operation {
	ops := make([]operation, 0, batch.Len())
	for _, l := range batch.ToCreate {
		ops = append(ops, operation{verb: VerbCreate, label: l})
	}
	for _, l := range batch.ToUpdate {
		ops = append(ops, operation{verb: VerbUpdate, label: l})
	}
	for _, l := range batch.ToDelete {
		ops = append(ops, operation{verb: VerbDelete, label: l})
	}
	return ops
}

func (e *Executor) run(ctx context.Context, repo label.Repository, op operation) (res Result) {
	res = Result{Verb: op.verb, Label: op.label, DryRun: e.dryRun}

	if e.dryRun {
		metrics.RecordOperation(string(op.verb), metrics.ResultDryRun)
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic: %v", r)
		}
		outcome := metrics.ResultSuccess
		if res.Err != nil {
			outcome = metrics.ResultError
			logr.FromContextOrDiscard(ctx).V(1).Info("label operation failed",
				"repository", repo.FullName, "verb", op.verb, "label", op.label.Name, "error", res.Err.Error())
		}
		metrics.RecordOperation(string(op.verb), outcome)
	}()

	switch op.verb {
	case VerbCreate:
		_, res.Err = e.gateway.CreateLabel(ctx, op.label, repo)
	case VerbUpdate:
		_, res.Err = e.gateway.UpdateLabel(ctx, op.label)
	case VerbDelete:
		res.Err = e.gateway.DeleteLabel(ctx, op.label)
	default:
		res.Err = fmt.Errorf("unsupported operation %q", op.verb)
	}
	return res
}
