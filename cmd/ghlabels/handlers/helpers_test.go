package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/ghlabels/internal/config"
	"github.com/imamik/ghlabels/internal/label"
	"github.com/imamik/ghlabels/internal/orchestration"
	"github.com/imamik/ghlabels/internal/platform/github"
	"github.com/imamik/ghlabels/internal/template"
)

// saveAndRestoreFactories saves all factory variables and restores them after the test.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()

	origNewGateway := newGateway
	origNewObjectStore := newObjectStore
	origIsInteractive := isInteractive
	origConfirmChanges := confirmChanges
	origWriteMetrics := writeMetrics
	origLogOutput := logOutput

	logOutput = io.Discard
	isInteractive = func() bool { return false }

	t.Cleanup(func() {
		newGateway = origNewGateway
		newObjectStore = origNewObjectStore
		isInteractive = origIsInteractive
		confirmChanges = origConfirmChanges
		writeMetrics = origWriteMetrics
		logOutput = origLogOutput
	})
}

// fakeGateway serves one owner's repositories from memory.
type fakeGateway struct {
	mu        sync.Mutex
	repos     map[string]label.Repository
	labels    map[string][]label.Label
	listErr   map[string]error
	mutations []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		repos:   map[string]label.Repository{},
		labels:  map[string][]label.Label{},
		listErr: map[string]error{},
	}
}

func (f *fakeGateway) addRepository(fullName string, labels ...label.Label) label.Repository {
	repo := label.Repository{FullName: fullName, URL: "https://api.github.com/repos/" + fullName}
	for i := range labels {
		labels[i].URL = repo.LabelsURL() + "/" + labels[i].Name
	}
	f.repos[fullName] = repo
	f.labels[fullName] = labels
	return repo
}

func (f *fakeGateway) GetRepository(_ context.Context, owner, repo string) (label.Repository, error) {
	r, ok := f.repos[owner+"/"+repo]
	if !ok {
		return label.Repository{}, &github.APIError{StatusCode: 404, URL: "https://api.github.com/repos/" + owner + "/" + repo}
	}
	return r, nil
}

func (f *fakeGateway) ListOrgRepositories(_ context.Context, _ string) ([]label.Repository, error) {
	return nil, nil
}

func (f *fakeGateway) ListUserRepositories(_ context.Context, owner string) ([]label.Repository, error) {
	var repos []label.Repository
	for _, name := range []string{"a", "b", "c", "hello"} {
		if r, ok := f.repos[owner+"/"+name]; ok {
			repos = append(repos, r)
		}
	}
	return repos, nil
}

func (f *fakeGateway) ListLabels(_ context.Context, repo label.Repository) ([]label.Label, error) {
	if err := f.listErr[repo.FullName]; err != nil {
		return nil, err
	}
	return f.labels[repo.FullName], nil
}

func (f *fakeGateway) record(op string, l label.Label) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, fmt.Sprintf("%s %s", op, l))
}

func (f *fakeGateway) CreateLabel(_ context.Context, l label.Label, _ label.Repository) (label.Label, error) {
	f.record("create", l)
	return l, nil
}

func (f *fakeGateway) UpdateLabel(_ context.Context, l label.Label) (label.Label, error) {
	f.record("update", l)
	return l, nil
}

func (f *fakeGateway) DeleteLabel(_ context.Context, l label.Label) error {
	f.record("delete", l)
	return nil
}

func useGateway(gw orchestration.Gateway) {
	newGateway = func(*config.Settings) (orchestration.Gateway, error) { return gw, nil }
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const scenarioTemplate = "- name: bug\n  color: ff0000\n- name: wip\n  color: ffff00\n"

func settings(file string) *config.Settings {
	return &config.Settings{
		Token:    "secret",
		Endpoint: config.DefaultEndpoint,
		File:     file,
		Output:   config.OutputText,
	}
}

// objectStoreFunc adapts a function to template.ObjectStore.
type objectStoreFunc func(ctx context.Context, location string) ([]byte, error)

func (f objectStoreFunc) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f(ctx, location)
}

var _ template.ObjectStore = objectStoreFunc(nil)
