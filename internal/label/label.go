package label

import (
	"fmt"
	"strings"
)

// Label is a named, colored tag on a repository.
type Label struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`

	// URL is set only for labels observed on a remote repository.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// String renders the label the way it appears in report lines.
func (l Label) String() string {
	return fmt.Sprintf("%s: %s", l.Name, l.Color)
}

// Validate reports whether the label has a non-blank name and color.
func (l Label) Validate() error {
	name := strings.TrimSpace(l.Name)
	color := strings.TrimSpace(l.Color)

	switch {
	case name == "" && color != "":
		return fmt.Errorf("label item without name. %s", l.Color)
	case color == "" && name != "":
		return fmt.Errorf("label item without color. %s", l.Name)
	case name == "" && color == "":
		return fmt.Errorf("label item must have name and color: %+v", l)
	}
	return nil
}

// WithColor returns a copy of the label carrying the given color.
// Name and URL are kept, so the copy still addresses the same remote label.
func (l Label) WithColor(color string) Label {
	l.Color = color
	return l
}

// NormalizeColor returns the comparable form of a color value.
func NormalizeColor(color string) string {
	return strings.TrimSpace(color)
}

// SameColor reports whether two colors are equal after normalization.
// The comparison is case-sensitive.
func SameColor(a, b string) bool {
	return NormalizeColor(a) == NormalizeColor(b)
}

// Repository references one remote repository.
type Repository struct {
	FullName string `json:"full_name" yaml:"fullName"`
	URL      string `json:"url" yaml:"url"`
}

// LabelsURL returns the address of the repository's label collection.
func (r Repository) LabelsURL() string {
	return strings.TrimSuffix(r.URL, "/") + "/labels"
}

// String returns the repository's display name.
func (r Repository) String() string {
	return r.FullName
}
