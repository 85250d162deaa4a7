package services

import (
	"encoding/json"
	"fmt"
	"log"

	"boutique/internal/repositories"

	"github.com/streadway/amqp"
)

// StockWorker consumes checkout events and decrements article stock once
// an order has been captured.
type StockWorker struct {
	articleRepo repositories.ArticleRepository
}

// NewStockWorker creates a new StockWorker.
func NewStockWorker(articleRepo repositories.ArticleRepository) *StockWorker {
	return &StockWorker{
		articleRepo: articleRepo,
	}
}

type checkoutEvent struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
	Lines   []struct {
		ArticleID      string `json:"articleId"`
		QuantityInCart int    `json:"quantityInCart"`
	} `json:"lines"`
}

// HandleMessage processes one queue delivery. Unknown event types are
// acked and ignored; inconsistency events are logged for the alerting
// trail and acked.
func (w *StockWorker) HandleMessage(msg amqp.Delivery) error {
	var event checkoutEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		// Malformed payloads are dropped rather than requeued forever.
		log.Printf("stock worker: dropping malformed event: %v", err)
		return nil
	}

	switch event.Type {
	case "checkout.captured":
		return w.decrementStock(event)
	case "checkout.inconsistency":
		log.Printf("stock worker: ALERT inconsistency for order %s: %s", event.OrderID, string(msg.Body))
		return nil
	default:
		return nil
	}
}

func (w *StockWorker) decrementStock(event checkoutEvent) error {
	for _, line := range event.Lines {
		article, err := w.articleRepo.GetByID(line.ArticleID)
		if err != nil {
			log.Printf("stock worker: article %s from order %s not found, skipping: %v", line.ArticleID, event.OrderID, err)
			continue
		}

		article.Quantity -= line.QuantityInCart
		if article.Quantity < 0 {
			article.Quantity = 0
		}
		if err := w.articleRepo.Update(article); err != nil {
			return fmt.Errorf("failed to update stock for article %s: %w", line.ArticleID, err)
		}
		log.Printf("stock worker: article %s stock now %d after order %s", article.ID, article.Quantity, event.OrderID)
	}
	return nil
}
