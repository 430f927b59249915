package categories_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickman/inventory-index/cmd/categories"
	"pickman/inventory-index/internal/models"
)

func TestCategoriesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categories", categories.Cmd.Use)
	assert.Contains(t, categories.Cmd.Long, "--subcategory")
	assert.NotNil(t, categories.Cmd.RunE)
	assert.NotNil(t, categories.Cmd.Flags().Lookup("category"))
}

func TestPrint(t *testing.T) {
	idx := models.CategoryIndex{}
	idx.Add("Personal", "Helmets")
	idx.Add("Personal", "Armor")
	idx.Add("Mining", "Gadgets")
	idx.Add("Empty", "")

	var buf bytes.Buffer
	require.NoError(t, categories.Print(&buf, idx, ""))
	assert.Equal(t, "Empty\nMining\n  Gadgets\nPersonal\n  Armor\n  Helmets\n", buf.String())

	buf.Reset()
	require.NoError(t, categories.Print(&buf, idx, "Mining"))
	assert.Equal(t, "Mining\n  Gadgets\n", buf.String())

	assert.Error(t, categories.Print(&buf, idx, "Nope"))
}
