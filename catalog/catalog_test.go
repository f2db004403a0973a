package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	cats := c.Categories()
	assert.Len(t, cats, 14)
	assert.Len(t, c.Items(), 27)

	slugs := map[string]bool{}
	for _, cat := range cats {
		assert.False(t, slugs[cat.Slug], "duplicate slug %s", cat.Slug)
		slugs[cat.Slug] = true
		require.NotNil(t, cat.Description, "category %s", cat.Slug)
		assert.Empty(t, *cat.Description)
	}

	for _, it := range c.Items() {
		assert.True(t, c.HasCategory(it.CategoryID))
		assert.True(t, it.IsVeg)
		assert.False(t, it.IsBestseller)
		require.NotNil(t, it.Description)
		assert.Equal(t, "Delicious "+it.Name+" prepared with fresh ingredients.", *it.Description)
	}
}

func TestCategoryBySlug(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	got, ok := c.CategoryBySlug("paneer")
	require.True(t, ok)
	assert.Equal(t, "Paneer Special", got.Name)

	_, ok = c.CategoryBySlug("Paneer")
	assert.False(t, ok, "slug lookup is case-sensitive")
	_, ok = c.CategoryBySlug("unknown-slug")
	assert.False(t, ok)
}

func TestItemsInCategory(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.ItemsInCategory(3), 3)
	soups := c.ItemsInCategory(5)
	assert.NotNil(t, soups)
	assert.Empty(t, soups)
	assert.Empty(t, c.ItemsInCategory(999))
}

func TestCategories_ReturnsCopy(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	cats := c.Categories()
	cats[0].Name = "changed"
	assert.Equal(t, "Breakfast & Snacks", c.Categories()[0].Name)
}

func TestParse_RejectsBadCatalogs(t *testing.T) {
	tests := map[string]string{
		"duplicate slug": `
categories:
  - {id: 1, name: A, slug: a}
  - {id: 2, name: B, slug: a}
`,
		"unknown category": `
categories:
  - {id: 1, name: A, slug: a}
items:
  - {id: 1, categoryId: 2, name: X, price: 10}
`,
		"negative price": `
categories:
  - {id: 1, name: A, slug: a}
items:
  - {id: 1, categoryId: 1, name: X, price: -1}
`,
		"not yaml": "categories: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_ExplicitFlags(t *testing.T) {
	c, err := Parse([]byte(`
categories:
  - {id: 7, name: Dal, slug: dal, description: Lentils}
items:
  - {id: 1, categoryId: 7, name: Dal Fry, price: 150, isVeg: false, isBestseller: true, description: House special}
`))
	require.NoError(t, err)
	cat, _ := c.CategoryBySlug("dal")
	require.NotNil(t, cat.Description)
	assert.Equal(t, "Lentils", *cat.Description)

	it := c.Items()[0]
	assert.False(t, it.IsVeg)
	assert.True(t, it.IsBestseller)
	assert.Equal(t, "House special", *it.Description)
}
