// Package reconcile computes the operations that converge a repository's
// labels onto a desired label set.
//
// [Plan] is a pure set difference keyed by label name. It never talks to a
// remote API and never fails: a label without a counterpart is the normal
// outcome of diffing, not an error.
package reconcile

import "github.com/imamik/ghlabels/internal/label"

// Flags control which operation kinds a plan may contain.
type Flags struct {
	// DryRun reports intended changes without performing them.
	// It has no effect on the computed Batch.
	DryRun bool

	// NoCreate suppresses creating missing labels. It also suppresses updates
	// of existing labels whose color differs.
	NoCreate bool

	// NoDelete suppresses deleting labels that are absent from the desired set.
	NoDelete bool
}

// Batch holds the operations for one repository.
type Batch struct {
	ToCreate []label.Label `json:"create,omitempty" yaml:"create,omitempty"`
	ToUpdate []label.Label `json:"update,omitempty" yaml:"update,omitempty"`
	ToDelete []label.Label `json:"delete,omitempty" yaml:"delete,omitempty"`
}

// Empty reports whether the batch contains no operations.
func (b Batch) Empty() bool {
	return b.Len() == 0
}

// Len returns the total number of operations in the batch.
func (b Batch) Len() int {
	return len(b.ToCreate) + len(b.ToUpdate) + len(b.ToDelete)
}

// Plan diffs desired against observed labels.
//
// ToCreate keeps desired order; ToUpdate and ToDelete keep observed order.
// Update entries are the observed record (name and URL) with the desired
// color. When several desired labels share a name, the first one wins.
func Plan(desired, observed []label.Label, flags Flags) Batch {
	wanted := indexByName(desired)
	present := indexByName(observed)

	var batch Batch

	if !flags.NoCreate {
		for _, d := range desired {
			if _, ok := present[d.Name]; !ok {
				batch.ToCreate = append(batch.ToCreate, d)
			}
		}

		for _, e := range observed {
			d, ok := wanted[e.Name]
			if ok && !label.SameColor(e.Color, d.Color) {
				batch.ToUpdate = append(batch.ToUpdate, e.WithColor(label.NormalizeColor(d.Color)))
			}
		}
	}

	if !flags.NoDelete {
		for _, e := range observed {
			if _, ok := wanted[e.Name]; !ok {
				batch.ToDelete = append(batch.ToDelete, e)
			}
		}
	}

	return batch
}

// indexByName maps each name to its first occurrence.
func indexByName(labels []label.Label) map[string]label.Label {
	index := make(map[string]label.Label, len(labels))
	for _, l := range labels {
		if _, seen := index[l.Name]; !seen {
			index[l.Name] = l
		}
	}
	return index
}
