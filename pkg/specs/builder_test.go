package specs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transactionalblog/sigmod-contest-2020/pkg/errors"
)

func TestBuilderNormalizesAndOrders(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("www.sourcea.com", "1", "Acme Widget 100 PRO"))
	require.NoError(t, b.Add("www.sourceb.com", "1", "ACME Widget 100 Plus"))

	c := b.Catalog()
	require.Equal(t, 2, c.Len())

	records := c.Records()
	assert.Equal(t, "www.sourcea.com//1", records[0].ID)
	assert.Equal(t, "acme widget 100 pro", records[0].Title)
	assert.Equal(t, "www.sourceb.com//1", records[1].ID)
	assert.Equal(t, "acme widget 100 plus", records[1].Title)
}

func TestBuilderUniqueIDs(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("www.sourcea.com", "1", "first"))

	err := b.Add("www.sourcea.com", "1", "second")
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateID(err))
	assert.Contains(t, err.Error(), "www.sourcea.com//1")
}

func TestBuilderIDsDistinctAcrossSources(t *testing.T) {
	// Same number in different sources must not collide.
	b := NewBuilder()
	require.NoError(t, b.Add("www.sourcea.com", "1", "a title"))
	require.NoError(t, b.Add("www.sourceb.com", "1", "b title"))

	c := b.Catalog()
	ids := make(map[string]bool)
	for _, rec := range c.Records() {
		assert.False(t, ids[rec.ID], "duplicate id %s", rec.ID)
		ids[rec.ID] = true
	}
}

func TestAddItemMissingTitle(t *testing.T) {
	b := NewBuilder()
	err := b.AddItem(Item{Source: "www.sourcea.com", Number: "2"})
	require.Error(t, err)
	assert.True(t, errors.IsMissingAttribute(err))
	assert.Contains(t, err.Error(), "<page title>")

	// Nothing is added or counted until the caller decides to skip.
	assert.Equal(t, 0, b.Catalog().Len())
}

func TestBuildSkipsMissingTitles(t *testing.T) {
	items := []Item{
		{Source: "www.sourcea.com", Number: "1", Title: "Acme Widget", HasTitle: true},
		{Source: "www.sourcea.com", Number: "2", HasTitle: false},
		{Source: "www.sourceb.com", Number: "1", Title: "Acme Gizmo", HasTitle: true},
	}

	c, err := Build(items)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Skipped())
}

func TestBuildEmpty(t *testing.T) {
	c, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Skipped())
	assert.Empty(t, c.Records())
}

func TestCatalogLookup(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("www.sourcea.com", "7", "Sony Alpha A7 III"))
	c := b.Catalog()

	rec, ok := c.Lookup("www.sourcea.com//7")
	require.True(t, ok)
	assert.Equal(t, "sony alpha a7 iii", rec.Title)

	title, ok := c.Title("www.sourcea.com//7")
	require.True(t, ok)
	assert.Equal(t, "sony alpha a7 iii", title)

	_, ok = c.Lookup("www.sourcea.com//8")
	assert.False(t, ok)
}

func TestMakeID(t *testing.T) {
	assert.Equal(t, "www.sourcea.com//42", MakeID("www.sourcea.com", "42"))
}

func TestBuilderManyRecords(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < 500; i++ {
		require.NoError(t, b.Add("www.sourcea.com", fmt.Sprintf("%d", i), fmt.Sprintf("Camera Model %d", i)))
	}
	c := b.Catalog()
	assert.Equal(t, 500, c.Len())

	// Insertion order is preserved.
	assert.Equal(t, "www.sourcea.com//0", c.Records()[0].ID)
	assert.Equal(t, "www.sourcea.com//499", c.Records()[499].ID)
}
