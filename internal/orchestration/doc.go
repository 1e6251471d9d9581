// Package orchestration runs label reconciliation across a fleet of
// repositories.
//
// # Workflow
//
// A [Fleet] executes three phases, each fanned out concurrently and fully
// joined before the next one starts:
//  1. Resolve - turn a [Scope] into an ordered repository list
//  2. Plan - list each repository's labels and diff them with reconcile.Plan
//  3. Apply - run an [Executor] per repository, creating, updating and
//     deleting labels (or simulating it in dry-run mode)
//
// Only resolution failures abort a run. A repository whose labels cannot be
// listed, and any single failed operation, is reported in place and never
// stops sibling work.
//
// # Ordering
//
// The [Report] is rebuilt from positions, not completion order: repositories
// in resolution order (owners as given, organization repositories before
// user repositories), then creates, updates and deletes, each in plan order.
//
// # Usage
//
//	fleet := orchestration.NewFleet(client, reconcile.Flags{DryRun: true})
//	report, err := fleet.Run(ctx, orchestration.Scope{Owner: "octo"}, desired)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(strings.Join(report.Lines(), "\n"))
package orchestration
