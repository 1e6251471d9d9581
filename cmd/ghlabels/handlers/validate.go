package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/imamik/ghlabels/internal/config"
)

// Validate loads and validates a label template without touching the API.
func Validate(ctx context.Context, s *config.Settings, out io.Writer) error {
	labels, err := loadTemplate(ctx, s)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d labels\n", s.File, len(labels))
	for _, l := range labels {
		fmt.Fprintf(out, "  %s\n", l)
	}
	return nil
}
