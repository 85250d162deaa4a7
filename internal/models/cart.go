package models

import "math"

// CartLine is one article's reconciled quantity in the cart plus a
// denormalized snapshot of its display fields taken at add time. Price
// already includes any discount that was active when the line was added;
// a later catalog price change does not alter an existing line.
type CartLine struct {
	ArticleID      string  `json:"articleId"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	QuantityInCart int     `json:"quantityInCart"`
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
