package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adnanmuhammad4393/henna-storefront/internal/catalog"
	appErrors "github.com/adnanmuhammad4393/henna-storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {

	t.Run("Loads a JSON product list", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "products.json")
		data := `[{"id":"1","name":"Henna Cone","price":150},{"id":"2","name":"Henna Oil","price":250}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		// Act
		c, err := catalog.Load(path)

		// Assert
		require.NoError(t, err)
		assert.Len(t, c.List(), 2)

		product, err := c.Get("1")
		require.NoError(t, err)
		assert.Equal(t, "Henna Cone", product.Name)
		assert.Equal(t, float64(150), product.Price)
	})

	t.Run("Empty path yields an empty catalog", func(t *testing.T) {
		c, err := catalog.Load("")

		require.NoError(t, err)
		assert.Empty(t, c.List())
	})

	t.Run("Failure - malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := catalog.Load(path)

		assert.Error(t, err)
	})
}

func TestGet(t *testing.T) {

	c, err := catalog.Load("")
	require.NoError(t, err)

	_, err = c.Get("missing")

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}

func TestProductToLineItem(t *testing.T) {

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"7","name":"Gift Box","price":499,"image":"box.png"}]`), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)

	product, err := c.Get("7")
	require.NoError(t, err)

	item := product.LineItem()
	assert.Equal(t, "7", item.ID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "box.png", item.Image)
}
