package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transactionalblog/sigmod-contest-2020/pkg/errors"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/specs"
)

func writeSpec(t *testing.T, root, source, number, content string) {
	t.Helper()
	dir := filepath.Join(root, source)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, number+".json"), []byte(content), 0o644))
}

func TestRead(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "www.sourcea.com", "1", `{"<page title>": "Acme Widget 100 Pro", "brand": "Acme"}`)
	writeSpec(t, root, "www.sourcea.com", "2", `{"<page title>": "Acme Gizmo 200"}`)
	writeSpec(t, root, "www.sourceb.com", "1", `{"<page title>": "Acme Widget 100 Plus"}`)

	items, err := Read(root)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// os.ReadDir sorts entries, so order is deterministic.
	assert.Equal(t, specs.Item{
		Source: "www.sourcea.com", Number: "1",
		Title: "Acme Widget 100 Pro", HasTitle: true,
	}, items[0])
	assert.Equal(t, "www.sourceb.com", items[2].Source)
}

func TestReadMissingTitleAttribute(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "www.sourcea.com", "1", `{"brand": "Acme"}`)

	items, err := Read(root)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].HasTitle)
}

func TestReadNonStringTitle(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "www.sourcea.com", "1", `{"<page title>": 42}`)

	items, err := Read(root)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].HasTitle)
}

func TestReadUnparsableFile(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "www.sourcea.com", "1", `{not json`)
	writeSpec(t, root, "www.sourcea.com", "2", `{"<page title>": "Sony Camera"}`)

	items, err := Read(root)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.False(t, items[0].HasTitle)
	assert.True(t, items[1].HasTitle)
}

func TestReadIgnoresNonJSONFiles(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "www.sourcea.com", "1", `{"<page title>": "Acme Widget"}`)
	require.NoError(t, os.WriteFile(filepath.Join(root, "www.sourcea.com", "README.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.json"), []byte("{}"), 0o644))

	items, err := Read(root)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestReadMissingRoot(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "no-such-dir"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestReadEmptyRoot(t *testing.T) {
	items, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, items)
}
