package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imamik/ghlabels/internal/label"
	"github.com/imamik/ghlabels/internal/platform/s3"
)

// ObjectStore fetches templates kept in object storage.
type ObjectStore interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Loader reads templates from local files and object storage.
type Loader struct {
	// Objects serves s3:// locations. Nil disables object storage.
	Objects ObjectStore
}

// Load reads a local template file.
func Load(path string) ([]label.Label, error) {
	return (&Loader{}).Load(context.Background(), path)
}

// Load reads and validates the template at path.
func (l *Loader) Load(ctx context.Context, path string) ([]label.Label, error) {
	data, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	if s3.IsURL(path) {
		if l.Objects == nil {
			return nil, loadError(path, "cannot read '%s': object storage is not configured", path)
		}
		data, err := l.Objects.Fetch(ctx, path)
		if s3.IsNotFound(err) {
			return nil, &LoadError{Source: path, Err: fmt.Errorf("file '%s' does not exist: %w", path, ErrNotExist)}
		}
		if err != nil {
			return nil, loadError(path, "cannot read '%s': %w", path, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("file '%s' does not exist: %w", path, ErrNotExist)}
	}
	if err != nil {
		return nil, loadError(path, "cannot read '%s': %w", path, err)
	}
	return data, nil
}

// Parse decodes and validates template content. source names the template
// in error messages.
func Parse(data []byte, source string) ([]label.Label, error) {
	var labels []label.Label
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, loadError(source, "invalid yaml file '%s': %w", source, err)
	}

	if len(labels) == 0 {
		return nil, loadError(source, "no labels in %s", source)
	}

	for i := range labels {
		labels[i].Name = strings.TrimSpace(labels[i].Name)
		labels[i].Color = label.NormalizeColor(labels[i].Color)
		// Remote addresses never come from a template.
		labels[i].URL = ""
	}

	if err := Validate(labels); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return labels, nil
}

// Validate returns an *InvalidLabelError for the first invalid label.
func Validate(labels []label.Label) error {
	for i, l := range labels {
		if err := l.Validate(); err != nil {
			return &InvalidLabelError{Index: i, Label: l, Err: err}
		}
	}
	return nil
}
