package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ghlabels/internal/config"
	"github.com/imamik/ghlabels/internal/template"
)

func TestValidate_PrintsLabels(t *testing.T) {
	saveAndRestoreFactories(t)

	path := writeTemplate(t, scenarioTemplate)

	var out bytes.Buffer
	require.NoError(t, Validate(context.Background(), settings(path), &out))
	assert.Equal(t, path+": 2 labels\n  bug: ff0000\n  wip: ffff00\n", out.String())
}

func TestValidate_MissingFile(t *testing.T) {
	saveAndRestoreFactories(t)

	err := Validate(context.Background(), settings("/nonexistent/labels.yml"), &bytes.Buffer{})

	require.ErrorIs(t, err, template.ErrNotExist)
	assert.Contains(t, err.Error(), "file '/nonexistent/labels.yml' does not exist")
}

func TestValidate_ObjectStorageClientError(t *testing.T) {
	saveAndRestoreFactories(t)

	newObjectStore = func(context.Context, config.S3Settings) (template.ObjectStore, error) {
		return nil, errors.New("no credentials")
	}

	err := Validate(context.Background(), settings("s3://team/labels.yml"), &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create object storage client")
}
