package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreatedEvent is raised when a new product is created.
type ProductCreatedEvent struct {
	ProductID     string
	Name          string
	Price         *Price
	CategoryID    string
	StockQuantity int64
	CreatedAt     time.Time
}

func (e *ProductCreatedEvent) EventType() string {
	return "product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// ProductUpdatedEvent is raised when product basic info is updated.
type ProductUpdatedEvent struct {
	ProductID string
	UpdatedAt time.Time
	Changes   map[string]interface{} // Map of field name to new value
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// ProductStockUpdatedEvent is raised whenever the stock quantity changes.
type ProductStockUpdatedEvent struct {
	ProductID   string
	OldQuantity int64
	NewQuantity int64
	UpdatedAt   time.Time
}

func (e *ProductStockUpdatedEvent) EventType() string {
	return "product.stock_updated"
}

func (e *ProductStockUpdatedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductStockUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// LowStockDetectedEvent is raised when a stock update crosses below the
// low-stock threshold. It fires only on the downward crossing, not on every
// sub-threshold update.
type LowStockDetectedEvent struct {
	ProductID  string
	Name       string
	Quantity   int64
	Threshold  int64
	DetectedAt time.Time
}

func (e *LowStockDetectedEvent) EventType() string {
	return "product.low_stock_detected"
}

func (e *LowStockDetectedEvent) AggregateID() string {
	return e.ProductID
}

func (e *LowStockDetectedEvent) OccurredAt() time.Time {
	return e.DetectedAt
}

// ProductCategoryChangedEvent is raised when a product moves to another category.
type ProductCategoryChangedEvent struct {
	ProductID     string
	OldCategoryID string
	NewCategoryID string
	ChangedAt     time.Time
}

func (e *ProductCategoryChangedEvent) EventType() string {
	return "product.category_changed"
}

func (e *ProductCategoryChangedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductCategoryChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// ProductDeletedEvent is raised when a product is soft-deleted.
type ProductDeletedEvent struct {
	ProductID string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string {
	return "product.deleted"
}

func (e *ProductDeletedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductDeletedEvent) OccurredAt() time.Time {
	return e.DeletedAt
}

// CategoryCreatedEvent is raised when a new category is created.
type CategoryCreatedEvent struct {
	CategoryID string
	Name       string
	CreatedAt  time.Time
}

func (e *CategoryCreatedEvent) EventType() string {
	return "category.created"
}

func (e *CategoryCreatedEvent) AggregateID() string {
	return e.CategoryID
}

func (e *CategoryCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// CategoryUpdatedEvent is raised when category info is updated.
type CategoryUpdatedEvent struct {
	CategoryID string
	UpdatedAt  time.Time
	Changes    map[string]interface{}
}

func (e *CategoryUpdatedEvent) EventType() string {
	return "category.updated"
}

func (e *CategoryUpdatedEvent) AggregateID() string {
	return e.CategoryID
}

func (e *CategoryUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// CategoryActivatedEvent is raised when a category is activated.
type CategoryActivatedEvent struct {
	CategoryID  string
	ActivatedAt time.Time
}

func (e *CategoryActivatedEvent) EventType() string {
	return "category.activated"
}

func (e *CategoryActivatedEvent) AggregateID() string {
	return e.CategoryID
}

func (e *CategoryActivatedEvent) OccurredAt() time.Time {
	return e.ActivatedAt
}

// CategoryDeactivatedEvent is raised when a category is deactivated.
type CategoryDeactivatedEvent struct {
	CategoryID    string
	DeactivatedAt time.Time
}

func (e *CategoryDeactivatedEvent) EventType() string {
	return "category.deactivated"
}

func (e *CategoryDeactivatedEvent) AggregateID() string {
	return e.CategoryID
}

func (e *CategoryDeactivatedEvent) OccurredAt() time.Time {
	return e.DeactivatedAt
}
