package domain

import (
	"strings"
	"time"
)

// Field constants for Category change tracking
const (
	CategoryFieldName        = "name"
	CategoryFieldDescription = "description"
	CategoryFieldActive      = "active"
)

// Category is an aggregate root grouping products. It does not own Product
// lifetimes; the product collection is a read-side view served by the read
// model, filtered by category id.
type Category struct {
	id          string
	name        string
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
	changes     *ChangeTracker
	events      []DomainEvent
}

// NewCategory creates a new active Category.
func NewCategory(id, name, description string, now time.Time) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyCategoryName
	}

	c := &Category{
		id:          id,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		active:      true,
		createdAt:   now,
		updatedAt:   now,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	c.events = append(c.events, &CategoryCreatedEvent{
		CategoryID: c.id,
		Name:       c.name,
		CreatedAt:  now,
	})

	return c, nil
}

// ReconstructCategory reconstructs a Category from persisted state.
func ReconstructCategory(id, name, description string, active bool, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters

func (c *Category) ID() string {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) IsActive() bool {
	return c.active
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) Changes() *ChangeTracker {
	return c.changes
}

func (c *Category) DomainEvents() []DomainEvent {
	return c.events
}

// ClearEvents clears the accumulated domain events.
func (c *Category) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

// UpdateInfo replaces the category's name and description.
func (c *Category) UpdateInfo(name, description string, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyCategoryName
	}

	changes := make(map[string]interface{})

	trimmedName := strings.TrimSpace(name)
	if trimmedName != c.name {
		c.name = trimmedName
		c.changes.MarkDirty(CategoryFieldName)
		changes["name"] = c.name
	}

	trimmedDesc := strings.TrimSpace(description)
	if trimmedDesc != c.description {
		c.description = trimmedDesc
		c.changes.MarkDirty(CategoryFieldDescription)
		changes["description"] = c.description
	}

	if len(changes) > 0 {
		c.updatedAt = now
		c.events = append(c.events, &CategoryUpdatedEvent{
			CategoryID: c.id,
			UpdatedAt:  now,
			Changes:    changes,
		})
	}

	return nil
}

// Activate marks the category active. Activating an active category is a no-op.
func (c *Category) Activate(now time.Time) {
	if c.active {
		return
	}
	c.active = true
	c.changes.MarkDirty(CategoryFieldActive)
	c.updatedAt = now

	c.events = append(c.events, &CategoryActivatedEvent{
		CategoryID:  c.id,
		ActivatedAt: now,
	})
}

// Deactivate marks the category inactive. Deactivating an inactive category is a no-op.
func (c *Category) Deactivate(now time.Time) {
	if !c.active {
		return
	}
	c.active = false
	c.changes.MarkDirty(CategoryFieldActive)
	c.updatedAt = now

	c.events = append(c.events, &CategoryDeactivatedEvent{
		CategoryID:    c.id,
		DeactivatedAt: now,
	})
}
