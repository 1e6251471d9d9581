package orchestration

import (
	"fmt"

	"github.com/imamik/ghlabels/internal/label"
)

// Verb names a label operation.
type Verb string

// Operation verbs, in execution-report order.
const (
	VerbCreate Verb = "CREATE"
	VerbUpdate Verb = "UPDATE"
	VerbDelete Verb = "DELETE"
)

const (
	// NoChanges is the single line reported for a repository already in sync.
	NoChanges = "NO CHANGES"

	// DryRunPrefix marks simulated operations.
	DryRunPrefix = "[DRY RUN]"
)

// Result is the outcome of one label operation.
type Result struct {
	Verb   Verb
	Label  label.Label
	DryRun bool
	Err    error
}

// Failed reports whether the operation failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// String renders the result as a report line.
func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s %s failed: %v", r.Verb, r.Label.Name, r.Err)
	case r.DryRun:
		return fmt.Sprintf("%s %s %s", DryRunPrefix, r.Verb, r.Label)
	default:
		return fmt.Sprintf("%s %s", r.Verb, r.Label)
	}
}

// RepoReport is the outcome of reconciling one repository.
type RepoReport struct {
	Repository label.Repository
	Results    []Result

	// Err is set when the repository's labels could not be listed.
	Err error
}

// Lines renders the repository name followed by its result lines.
func (r RepoReport) Lines() []string {
	lines := []string{r.Repository.FullName}

	switch {
	case r.Err != nil:
		lines = append(lines, fmt.Sprintf("LIST failed: %v", r.Err))
	case len(r.Results) == 0:
		lines = append(lines, NoChanges)
	default:
		for _, res := range r.Results {
			lines = append(lines, res.String())
		}
	}
	return lines
}

// Failures counts failed operations, plus one if listing failed.
func (r RepoReport) Failures() int {
	n := 0
	if r.Err != nil {
		n++
	}
	for _, res := range r.Results {
		if res.Failed() {
			n++
		}
	}
	return n
}

// Report is the ordered outcome of a whole run.
type Report struct {
	Repositories []RepoReport
}

// Lines flattens every repository's lines in report order.
func (r Report) Lines() []string {
	var lines []string
	for _, repo := range r.Repositories {
		lines = append(lines, repo.Lines()...)
	}
	return lines
}

// Failures counts failures across all repositories.
func (r Report) Failures() int {
	n := 0
	for _, repo := range r.Repositories {
		n += repo.Failures()
	}
	return n
}

// Summary counts what a report or a set of plans contains.
type Summary struct {
	Repositories int `json:"repositories" yaml:"repositories"`
	Unchanged    int `json:"unchanged" yaml:"unchanged"`
	Create       int `json:"create" yaml:"create"`
	Update       int `json:"update" yaml:"update"`
	Delete       int `json:"delete" yaml:"delete"`
	Failed       int `json:"failed" yaml:"failed"`
}

// Changes returns the number of label operations.
func (s Summary) Changes() int {
	return s.Create + s.Update + s.Delete
}

// Summary counts the report's operations by verb. Failed operations are
// counted both under their verb and as failures.
func (r Report) Summary() Summary {
	s := Summary{Repositories: len(r.Repositories)}
	for _, repo := range r.Repositories {
		if repo.Err == nil && len(repo.Results) == 0 {
			s.Unchanged++
		}
		for _, res := range repo.Results {
			s.count(res.Verb)
		}
		s.Failed += repo.Failures()
	}
	return s
}

func (s *Summary) count(verb Verb) {
	switch verb {
	case VerbCreate:
		s.Create++
	case VerbUpdate:
		s.Update++
	case VerbDelete:
		s.Delete++
	}
}

// Entry is the serializable form of a RepoReport.
type Entry struct {
	Repository string   `json:"repository" yaml:"repository"`
	Changes    []Change `json:"changes,omitempty" yaml:"changes,omitempty"`
	NoChanges  bool     `json:"noChanges,omitempty" yaml:"noChanges,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Change is the serializable form of a Result.
type Change struct {
	Verb   Verb   `json:"verb" yaml:"verb"`
	Name   string `json:"name" yaml:"name"`
	Color  string `json:"color" yaml:"color"`
	DryRun bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Entries converts the report for JSON or YAML output.
func (r Report) Entries() []Entry {
	entries := make([]Entry, 0, len(r.Repositories))
	for _, repo := range r.Repositories {
		entry := Entry{Repository: repo.Repository.FullName}
		if repo.Err != nil {
			entry.Error = repo.Err.Error()
		} else if len(repo.Results) == 0 {
			entry.NoChanges = true
		}
		for _, res := range repo.Results {
			change := Change{Verb: res.Verb, Name: res.Label.Name, Color: res.Label.Color, DryRun: res.DryRun}
			if res.Err != nil {
				change.Error = res.Err.Error()
			}
			entry.Changes = append(entry.Changes, change)
		}
		entries = append(entries, entry)
	}
	return entries
}
