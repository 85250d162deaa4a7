// Package cart implements the client-side shopping cart: an ordered set of
// lines keyed by article id, reconciled against live stock on every
// mutation and persisted through a pluggable store so it survives reloads.
package cart

import (
	"errors"
	"log"

	"boutique/internal/models"
)

var (
	// ErrOutOfStock is returned when adding an article whose stock is zero.
	ErrOutOfStock = errors.New("article is out of stock")
	// ErrStockExhausted is returned when the quantity in cart already
	// equals the article's live stock.
	ErrStockExhausted = errors.New("maximum stock quantity reached")
	// ErrLineNotFound is returned when no line matches the article id.
	ErrLineNotFound = errors.New("article not in cart")
)

// Cart holds the reconciled lines. All mutations happen on a single
// logical thread of interaction, so the engine itself takes no locks.
type Cart struct {
	lines []models.CartLine
	store Store
}

// New creates a cart restored from the given store. Missing or corrupt
// stored state loads as an empty cart; it never fails construction.
func New(store Store) *Cart {
	lines, err := store.Load()
	if err != nil {
		log.Printf("cart: failed to restore from store, starting empty: %v", err)
		lines = nil
	}
	return &Cart{
		lines: lines,
		store: store,
	}
}

// Add puts one unit of the article in the cart. Out-of-stock articles are
// rejected. If a line for the article already exists its quantity is
// incremented, clamped to the live stock. The unit price snapshots any
// active discount at this moment and is not live-linked to the catalog.
func (c *Cart) Add(article models.Article) error {
	if article.Quantity == 0 {
		return ErrOutOfStock
	}

	for i := range c.lines {
		if c.lines[i].ArticleID == article.ID {
			if c.lines[i].QuantityInCart+1 <= article.Quantity {
				c.lines[i].QuantityInCart++
			}
			c.lines[i].Stock = article.Quantity
			c.persist()
			return nil
		}
	}

	c.lines = append(c.lines, models.CartLine{
		ArticleID:      article.ID,
		Name:           article.Name,
		Image:          article.Image,
		Price:          article.DiscountedPrice(),
		Stock:          article.Quantity,
		QuantityInCart: 1,
	})
	c.persist()
	return nil
}

// Increase increments a line's quantity by one, bounded by the article's
// live stock.
func (c *Cart) Increase(articleID string) error {
	line := c.find(articleID)
	if line == nil {
		return ErrLineNotFound
	}
	if line.QuantityInCart >= line.Stock {
		return ErrStockExhausted
	}
	line.QuantityInCart++
	c.persist()
	return nil
}

// Decrease decrements a line's quantity by one, with a floor of 1.
// Reaching zero requires an explicit Remove.
func (c *Cart) Decrease(articleID string) error {
	line := c.find(articleID)
	if line == nil {
		return ErrLineNotFound
	}
	if line.QuantityInCart <= 1 {
		return nil
	}
	line.QuantityInCart--
	c.persist()
	return nil
}

// Remove deletes a line entirely, preserving the order of the rest.
func (c *Cart) Remove(articleID string) error {
	for i := range c.lines {
		if c.lines[i].ArticleID == articleID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return nil
		}
	}
	return ErrLineNotFound
}

// Clear empties the cart, both in memory and in the store.
func (c *Cart) Clear() error {
	c.lines = nil
	if err := c.store.Clear(); err != nil {
		return err
	}
	return nil
}

// Total sums price times quantity over all lines, rounded to 2 decimal
// places. Pure; this is exactly the amount checkout captures.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.QuantityInCart)
	}
	return models.Round2(total)
}

// Lines returns a copy of the cart lines in display order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) find(articleID string) *models.CartLine {
	for i := range c.lines {
		if c.lines[i].ArticleID == articleID {
			return &c.lines[i]
		}
	}
	return nil
}

// persist writes the full snapshot after a mutation. On failure the
// in-memory cart stays authoritative for the session; it just won't
// survive a reload.
func (c *Cart) persist() {
	if err := c.store.Save(c.lines); err != nil {
		log.Printf("cart: failed to persist snapshot: %v", err)
	}
}
