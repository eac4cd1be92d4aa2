package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), nil, 0o600))

	svc := &FileService{}
	names := svc.ListDir(dir)
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, names)
}

func TestListDir_Missing(t *testing.T) {
	svc := &FileService{}
	names := svc.ListDir(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.NotNil(t, names)
	assert.Empty(t, names)
}
