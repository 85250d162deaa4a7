package cart_test

import (
	"testing"

	"boutique/internal/cart"
	"boutique/internal/models"

	"github.com/stretchr/testify/assert"
)

func mangaArticle() models.Article {
	return models.Article{
		ID:       "art-1",
		Name:     "One Piece Vol. 3",
		Image:    "https://example.com/onepiece.jpg",
		Price:    100,
		Discount: 20,
		Quantity: 2,
		Category: models.CategoryManga,
	}
}

func TestCart_AddOutOfStock(t *testing.T) {
	c := cart.New(cart.NewMemoryStore())

	article := mangaArticle()
	article.Quantity = 0

	err := c.Add(article)
	assert.ErrorIs(t, err, cart.ErrOutOfStock)
	assert.Equal(t, 0, c.Len(), "cart must be unchanged")
	assert.Equal(t, 0.0, c.Total())
}

func TestCart_AddSnapshotsDiscountedPrice(t *testing.T) {
	c := cart.New(cart.NewMemoryStore())
	article := mangaArticle()

	assert.NoError(t, c.Add(article))
	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 80.00, lines[0].Price, "20%% off 100 snapshots as 80.00")
	assert.Equal(t, 1, lines[0].QuantityInCart)

	// A later catalog price change does not alter the existing line.
	article.Price = 500
	assert.NoError(t, c.Add(article))
	lines = c.Lines()
	assert.Len(t, lines, 1, "adding the same article increments instead of duplicating")
	assert.Equal(t, 80.00, lines[0].Price)
	assert.Equal(t, 2, lines[0].QuantityInCart)
}

func TestCart_ScenarioDiscountedArticle(t *testing.T) {
	// Article {price: 100, discount: 20, quantity: 2}: two adds give one
	// line at unit price 80.00 and total 160.00; a third increase fails.
	c := cart.New(cart.NewMemoryStore())
	article := mangaArticle()

	assert.NoError(t, c.Add(article))
	assert.NoError(t, c.Add(article))

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].QuantityInCart)
	assert.Equal(t, 80.00, lines[0].Price)
	assert.Equal(t, 160.00, c.Total())

	err := c.Increase(article.ID)
	assert.ErrorIs(t, err, cart.ErrStockExhausted)
	assert.Equal(t, 2, c.Lines()[0].QuantityInCart)
}

func TestCart_AddClampsToStock(t *testing.T) {
	c := cart.New(cart.NewMemoryStore())
	article := mangaArticle()

	// Four adds against a stock of two never exceed the stock.
	for i := 0; i < 4; i++ {
		assert.NoError(t, c.Add(article))
	}
	assert.Equal(t, 2, c.Lines()[0].QuantityInCart)
}

func TestCart_IncreaseBoundedByStock(t *testing.T) {
	c := cart.New(cart.NewMemoryStore())
	article := mangaArticle()
	article.Quantity = 3

	assert.NoError(t, c.Add(article))
	assert.NoError(t, c.Increase(article.ID))
	assert.NoError(t, c.Increase(article.ID))

	// Quantity is now at the stock bound; further increases fail.
	assert.ErrorIs(t, c.Increase(article.ID), cart.ErrStockExhausted)
	assert.ErrorIs(t, c.Increase(article.ID), cart.ErrStockExhausted)
	assert.Equal(t, 3, c.Lines()[0].QuantityInCart)
}

func TestCart_DecreaseFloorsAtOne(t *testing.T) {
	c := cart.New(cart.NewMemoryStore())
	article := mangaArticle()

	assert.NoError(t, c.Add(article))
	assert.NoError(t, c.Add(article))
	assert.NoError(t, c.Decrease(article.ID))
	assert.Equal(t, 1, c.Lines()[0].QuantityInCart)

	// Decrease at one is a no-op; removal is a separate explicit action.
	assert.NoError(t, c.Decrease(article.ID))
	assert.Equal(t, 1, c.Lines()[0].QuantityInCart)
	assert.Equal(t, 1, c.Len())
}

func TestCart_RemovePreservesOrder(t *testing.T) {
	c := cart.New(cart.NewMemoryStore())

	first := mangaArticle()
	second := mangaArticle()
	second.ID = "art-2"
	second.Name = "Bleach Vol. 1"
	third := mangaArticle()
	third.ID = "art-3"
	third.Name = "Dragon Ball Vol. 7"

	assert.NoError(t, c.Add(first))
	assert.NoError(t, c.Add(second))
	assert.NoError(t, c.Add(third))

	assert.NoError(t, c.Remove(second.ID))
	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "art-1", lines[0].ArticleID)
	assert.Equal(t, "art-3", lines[1].ArticleID)

	assert.ErrorIs(t, c.Remove("art-2"), cart.ErrLineNotFound)
}

func TestCart_TotalIsIdempotent(t *testing.T) {
	c := cart.New(cart.NewMemoryStore())

	first := mangaArticle()
	second := mangaArticle()
	second.ID = "art-2"
	second.Price = 19.99
	second.Discount = 0
	second.Quantity = 5

	assert.NoError(t, c.Add(first))
	assert.NoError(t, c.Add(second))
	assert.NoError(t, c.Increase(second.ID))

	// 80.00 + 2*19.99
	assert.Equal(t, 119.98, c.Total())
	assert.Equal(t, c.Total(), c.Total(), "repeated calls without mutation agree")

	// Total equals the sum over current lines.
	var manual float64
	for _, line := range c.Lines() {
		manual += line.Price * float64(line.QuantityInCart)
	}
	assert.Equal(t, models.Round2(manual), c.Total())
}

func TestCart_Clear(t *testing.T) {
	store := cart.NewMemoryStore()
	c := cart.New(store)

	assert.NoError(t, c.Add(mangaArticle()))
	assert.NoError(t, c.Clear())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.Total())

	stored, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, stored, "clear empties the store too")
}

func TestCart_PersistsAcrossReload(t *testing.T) {
	store := cart.NewMemoryStore()
	c := cart.New(store)

	first := mangaArticle()
	second := mangaArticle()
	second.ID = "art-2"
	second.Quantity = 4

	assert.NoError(t, c.Add(first))
	assert.NoError(t, c.Add(second))
	assert.NoError(t, c.Increase(second.ID))

	// A new engine over the same store reproduces the same lines in order.
	reloaded := cart.New(store)
	assert.Equal(t, c.Lines(), reloaded.Lines())
	assert.Equal(t, c.Total(), reloaded.Total())
}
