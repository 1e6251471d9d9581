// Package github provides a minimal REST client for the GitHub v3 API,
// covering exactly the calls needed to reconcile repository labels.
//
// # Operations
//
//   - GetRepository: GET /repos/{owner}/{repo}
//   - ListOrgRepositories: GET /orgs/{owner}/repos (404 yields an empty list)
//   - ListUserRepositories: GET /users/{owner}/repos
//   - ListLabels: GET {repository}/labels
//   - CreateLabel: POST {repository}/labels
//   - UpdateLabel: PATCH {label}
//   - DeleteLabel: DELETE {label}
//
// Every request is attempted once. Lists return a single page of up to 100
// entries. Failures are returned as *APIError values that classify as
// ErrNotFound, ErrUnauthorized, ErrValidation or ErrUnknown.
//
// # Endpoints
//
// The public API (https://api.github.com) is used as given. Any other host
// without an explicit path is treated as GitHub Enterprise and gets the
// /api/v3 prefix.
package github
