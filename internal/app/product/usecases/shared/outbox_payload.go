package shared

import (
	"encoding/json"
	"fmt"

	"github.com/stockroom/inventory-service/internal/app/product/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
//
// The domain layer intentionally avoids serialization concerns; this adapter extracts primitives
// (e.g., Price as a decimal string) to keep payloads useful.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		payload := map[string]interface{}{
			"product_id":     e.ProductID,
			"name":           e.Name,
			"price":          e.Price.String(),
			"category_id":    e.CategoryID,
			"stock_quantity": e.StockQuantity,
			"created_at":     e.CreatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ProductUpdatedEvent:
		payload := map[string]interface{}{
			"product_id": e.ProductID,
			"changes":    e.Changes,
			"updated_at": e.UpdatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ProductStockUpdatedEvent:
		payload := map[string]interface{}{
			"product_id":   e.ProductID,
			"old_quantity": e.OldQuantity,
			"new_quantity": e.NewQuantity,
			"updated_at":   e.UpdatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.LowStockDetectedEvent:
		payload := map[string]interface{}{
			"product_id":  e.ProductID,
			"name":        e.Name,
			"quantity":    e.Quantity,
			"threshold":   e.Threshold,
			"detected_at": e.DetectedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ProductCategoryChangedEvent:
		payload := map[string]interface{}{
			"product_id":      e.ProductID,
			"old_category_id": e.OldCategoryID,
			"new_category_id": e.NewCategoryID,
			"changed_at":      e.ChangedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ProductDeletedEvent:
		payload := map[string]interface{}{
			"product_id": e.ProductID,
			"deleted_at": e.DeletedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.CategoryCreatedEvent:
		payload := map[string]interface{}{
			"category_id": e.CategoryID,
			"name":        e.Name,
			"created_at":  e.CreatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.CategoryUpdatedEvent:
		payload := map[string]interface{}{
			"category_id": e.CategoryID,
			"changes":     e.Changes,
			"updated_at":  e.UpdatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.CategoryActivatedEvent:
		payload := map[string]interface{}{
			"category_id":  e.CategoryID,
			"activated_at": e.ActivatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.CategoryDeactivatedEvent:
		payload := map[string]interface{}{
			"category_id":    e.CategoryID,
			"deactivated_at": e.DeactivatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err
	}

	// Fallback: try to marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
