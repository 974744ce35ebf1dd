package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, "main.scene.yaml", "")
	writeFile(t, dir, "forms/login.scene.yaml", "")
	writeFile(t, dir, "readme.md", "")
	writeFile(t, dir, "config.yaml", "")
	writeFile(t, dir, ".hidden.scene.yaml", "")
	writeFile(t, dir, ".cache/old.scene.yaml", "")
	writeFile(t, dir, "node_modules/pkg.scene.yaml", "")

	files, err := Files(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("forms", "login.scene.yaml"), "main.scene.yaml"}, files)
}

func TestFilesIgnore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, IgnoreFile, "# scratch work\ndrafts/\n")
	writeFile(t, dir, "main.scene.yaml", "")
	writeFile(t, dir, "drafts/a.scene.yaml", "")
	writeFile(t, dir, "forms/wip.draft.scene.yaml", "")
	writeFile(t, dir, "forms/login.scene.yaml", "")

	files, err := Files(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("forms", "login.scene.yaml"),
		filepath.Join("forms", "wip.draft.scene.yaml"),
		"main.scene.yaml",
	}, files)

	files, err = Files(dir, []string{"*.draft.scene.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("forms", "login.scene.yaml"), "main.scene.yaml"}, files)
}

func TestFilesExtraWithoutIgnoreFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, "a.scene.yaml", "")
	writeFile(t, dir, "b.scene.yaml", "")

	files, err := Files(dir, []string{"b.scene.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.scene.yaml"}, files)
}

func TestFilesMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := Files(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, "scenes/a.scene.yaml", "")
	writeFile(t, dir, "scenes/b.scene.yaml", "")
	writeFile(t, dir, "loose.yaml", "")

	loose := filepath.Join(dir, "loose.yaml")
	a := filepath.Join(dir, "scenes", "a.scene.yaml")
	b := filepath.Join(dir, "scenes", "b.scene.yaml")

	paths, err := Paths([]string{loose, filepath.Join(dir, "scenes"), a}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{loose, a, b}, paths)

	_, err = Paths([]string{filepath.Join(dir, "nope")}, nil)
	assert.Error(t, err)
}
