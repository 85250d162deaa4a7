package cart_test

import (
	"os"
	"path/filepath"
	"testing"

	"boutique/internal/cart"
	"boutique/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := cart.NewFileStore(path)

	lines := []models.CartLine{
		{ArticleID: "art-1", Name: "One Piece Vol. 3", Price: 80.00, Stock: 2, QuantityInCart: 2},
		{ArticleID: "art-2", Name: "Bleach Vol. 1", Price: 6.99, Stock: 9, QuantityInCart: 1},
	}
	assert.NoError(t, store.Save(lines))

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, lines, loaded, "reload reproduces the same lines in order")
}

func TestFileStore_MissingFileLoadsEmpty(t *testing.T) {
	store := cart.NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStore_MalformedContentResetsToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	store := cart.NewFileStore(path)
	loaded, err := store.Load()
	assert.NoError(t, err, "corrupt local state must not surface as a hard failure")
	assert.Empty(t, loaded)

	// The engine built on top starts empty and keeps working.
	c := cart.New(store)
	assert.Equal(t, 0, c.Len())
	assert.NoError(t, c.Add(models.Article{ID: "art-1", Name: "Mug", Price: 12.50, Quantity: 3, Category: models.CategoryDecoration}))
	assert.Equal(t, 1, c.Len())
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := cart.NewFileStore(path)

	assert.NoError(t, store.Save([]models.CartLine{{ArticleID: "art-1", QuantityInCart: 1}}))
	assert.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-absent snapshot is fine.
	assert.NoError(t, store.Clear())
}
