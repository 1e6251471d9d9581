package github

import (
	"context"
	"net/http"

	"github.com/imamik/ghlabels/internal/label"
)

// labelRequest is the payload for creating and updating labels.
type labelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func requestFor(l label.Label) labelRequest {
	return labelRequest{Name: l.Name, Color: l.Color}
}

// ListLabels returns the labels of a repository.
func (c *Client) ListLabels(ctx context.Context, repo label.Repository) ([]label.Label, error) {
	var labels []label.Label
	if err := c.do(ctx, "list_labels", http.MethodGet, withPageSize(repo.LabelsURL()), nil, &labels); err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []label.Label{}
	}
	return labels, nil
}

// CreateLabel adds a label to a repository.
func (c *Client) CreateLabel(ctx context.Context, l label.Label, repo label.Repository) (label.Label, error) {
	var created label.Label
	if err := c.do(ctx, "create_label", http.MethodPost, repo.LabelsURL(), requestFor(l), &created); err != nil {
		return label.Label{}, err
	}
	return created, nil
}

// UpdateLabel changes an existing label, addressed by its URL.
func (c *Client) UpdateLabel(ctx context.Context, l label.Label) (label.Label, error) {
	var updated label.Label
	if err := c.do(ctx, "update_label", http.MethodPatch, l.URL, requestFor(l), &updated); err != nil {
		return label.Label{}, err
	}
	return updated, nil
}

// DeleteLabel removes an existing label, addressed by its URL.
func (c *Client) DeleteLabel(ctx context.Context, l label.Label) error {
	return c.do(ctx, "delete_label", http.MethodDelete, l.URL, nil, nil)
}
