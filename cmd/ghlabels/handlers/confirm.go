package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/ghlabels/internal/orchestration"
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// confirmWithForm shows the planned change counts and asks for approval.
// Aborting the prompt counts as declining.
func confirmWithForm(ctx context.Context, summary orchestration.Summary) (bool, error) {
	var ok bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Apply label changes?").
				Description(describeChanges(summary)).
				Affirmative("Apply").
				Negative("Cancel").
				Value(&ok),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation canceled: %w", err)
	}
	return ok, nil
}

func describeChanges(s orchestration.Summary) string {
	desc := fmt.Sprintf("%d to create, %d to update, %d to delete across %d repositories",
		s.Create, s.Update, s.Delete, s.Repositories)
	if s.Failed > 0 {
		desc += fmt.Sprintf(" (%d could not be listed)", s.Failed)
	}
	return desc
}
