package domain

import (
	"strings"
	"time"
)

// Field constants for change tracking
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldStockQuantity = "stock_quantity"
	FieldCategoryID    = "category_id"
	FieldDeletedAt     = "deleted_at"
	FieldVersion       = "version"
)

// Product is the aggregate root for the inventory domain.
// It owns its Price and StockQuantity value objects and encapsulates all
// business rules related to stock and catalog data.
type Product struct {
	id          string
	name        string
	description string
	price       *Price
	stock       StockQuantity
	categoryID  string
	deleted     bool
	deletedAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
	version     int64
	changes     *ChangeTracker
	events      []DomainEvent
}

// NewProduct creates a new Product with the given details.
// Initial stock below the low-stock threshold does not raise a low-stock
// event; only a later downward crossing does.
func NewProduct(id, name, description string, price *Price, categoryID string, stock StockQuantity, now time.Time) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(categoryID) == "" {
		return nil, ErrEmptyCategoryID
	}
	if price == nil {
		price = ZeroPrice()
	}

	p := &Product{
		id:          id,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		price:       price,
		stock:       stock,
		categoryID:  strings.TrimSpace(categoryID),
		createdAt:   now,
		updatedAt:   now,
		version:     1,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		ProductID:     p.id,
		Name:          p.name,
		Price:         p.price,
		CategoryID:    p.categoryID,
		StockQuantity: p.stock.Value(),
		CreatedAt:     now,
	})

	return p, nil
}

// ReconstructProduct reconstructs a Product from persisted state.
// Used by repositories when loading from the database.
func ReconstructProduct(
	id, name, description string,
	price *Price,
	stock StockQuantity,
	categoryID string,
	version int64,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		categoryID:  categoryID,
		deleted:     deletedAt != nil,
		deletedAt:   deletedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     version,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() *Price {
	return p.price
}

func (p *Product) Stock() StockQuantity {
	return p.stock
}

func (p *Product) CategoryID() string {
	return p.categoryID
}

func (p *Product) IsDeleted() bool {
	return p.deleted
}

func (p *Product) DeletedAt() *time.Time {
	return p.deletedAt
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Version is a monotonic counter bumped on every mutation.
// It is persisted for diagnostics; writes are not compared against it.
func (p *Product) Version() int64 {
	return p.version
}

// IsLowStock returns true when the current stock is below LowStockThreshold.
func (p *Product) IsLowStock() bool {
	return p.stock.IsLow()
}

func (p *Product) Changes() *ChangeTracker {
	return p.changes
}

func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been published.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

// Business Methods

// UpdateBasicInfo replaces the product's name, description and price.
func (p *Product) UpdateBasicInfo(name, description string, price *Price, now time.Time) error {
	if p.deleted {
		return ErrProductDeleted
	}
	if err := validateProductName(name); err != nil {
		return err
	}
	if price == nil {
		price = ZeroPrice()
	}

	changes := make(map[string]interface{})

	trimmedName := strings.TrimSpace(name)
	if trimmedName != p.name {
		p.name = trimmedName
		p.changes.MarkDirty(FieldName)
		changes["name"] = p.name
	}

	trimmedDesc := strings.TrimSpace(description)
	if trimmedDesc != p.description {
		p.description = trimmedDesc
		p.changes.MarkDirty(FieldDescription)
		changes["description"] = p.description
	}

	if !price.Equals(p.price) {
		p.price = price
		p.changes.MarkDirty(FieldPrice)
		changes["price"] = p.price.String()
	}

	if len(changes) > 0 {
		p.touch(now)
		p.events = append(p.events, &ProductUpdatedEvent{
			ProductID: p.id,
			UpdatedAt: now,
			Changes:   changes,
		})
	}

	return nil
}

// UpdateStock replaces the stock quantity with an absolute value.
// A LowStockDetectedEvent is raised only when the update crosses from at or
// above the threshold to below it.
func (p *Product) UpdateStock(newQuantity int64, now time.Time) error {
	if p.deleted {
		return ErrProductDeleted
	}

	newStock, err := NewStockQuantity(newQuantity)
	if err != nil {
		return err
	}

	previous := p.stock
	if newStock.Equals(previous) {
		return nil
	}

	p.stock = newStock
	p.changes.MarkDirty(FieldStockQuantity)
	p.touch(now)

	p.events = append(p.events, &ProductStockUpdatedEvent{
		ProductID:   p.id,
		OldQuantity: previous.Value(),
		NewQuantity: newStock.Value(),
		UpdatedAt:   now,
	})

	if newStock.IsLow() && !previous.IsLow() {
		p.events = append(p.events, &LowStockDetectedEvent{
			ProductID:  p.id,
			Name:       p.name,
			Quantity:   newStock.Value(),
			Threshold:  LowStockThreshold,
			DetectedAt: now,
		})
	}

	return nil
}

// IncreaseStock adds quantity units to the current stock.
func (p *Product) IncreaseStock(quantity int64, now time.Time) error {
	if p.deleted {
		return ErrProductDeleted
	}
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	return p.UpdateStock(p.stock.Value()+quantity, now)
}

// DecreaseStock removes quantity units from the current stock.
// Fails with ErrInsufficientStock when quantity exceeds the units on hand;
// the stock is left unchanged in that case.
func (p *Product) DecreaseStock(quantity int64, now time.Time) error {
	if p.deleted {
		return ErrProductDeleted
	}
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if quantity > p.stock.Value() {
		return ErrInsufficientStock
	}
	return p.UpdateStock(p.stock.Value()-quantity, now)
}

// ChangeCategory moves the product to another category.
func (p *Product) ChangeCategory(categoryID string, now time.Time) error {
	if p.deleted {
		return ErrProductDeleted
	}
	trimmed := strings.TrimSpace(categoryID)
	if trimmed == "" {
		return ErrEmptyCategoryID
	}
	if trimmed == p.categoryID {
		return nil
	}

	old := p.categoryID
	p.categoryID = trimmed
	p.changes.MarkDirty(FieldCategoryID)
	p.touch(now)

	p.events = append(p.events, &ProductCategoryChangedEvent{
		ProductID:     p.id,
		OldCategoryID: old,
		NewCategoryID: p.categoryID,
		ChangedAt:     now,
	})

	return nil
}

// Delete soft-deletes the product. The transition is one-way; every mutator
// fails with ErrProductDeleted afterwards. The row is never removed from
// storage by domain logic.
func (p *Product) Delete(now time.Time) error {
	if p.deleted {
		return ErrProductDeleted
	}

	p.deleted = true
	p.deletedAt = &now
	p.changes.MarkDirty(FieldDeletedAt)
	p.touch(now)

	p.events = append(p.events, &ProductDeletedEvent{
		ProductID: p.id,
		DeletedAt: now,
	})

	return nil
}

func (p *Product) touch(now time.Time) {
	p.updatedAt = now
	p.version++
	p.changes.MarkDirty(FieldVersion)
}

// Validation helpers

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if len(trimmed) > 255 {
		return ErrProductNameTooLong
	}
	return nil
}
