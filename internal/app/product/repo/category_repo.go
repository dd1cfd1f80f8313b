package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/stockroom/inventory-service/internal/app/product/domain"
	"github.com/stockroom/inventory-service/internal/models/m_category"
)

// CategoryRepo is the Spanner implementation of the write-side category repository.
type CategoryRepo struct{}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{}
}

func buildCategoryInsertValues(c *domain.Category) map[string]interface{} {
	var description *string
	if d := c.Description(); d != "" {
		desc := d
		description = &desc
	}

	return m_category.BuildInsertMap(
		c.ID(),
		c.Name(),
		description,
		c.IsActive(),
		c.CreatedAt().UTC(),
		c.UpdatedAt().UTC(),
	)
}

// InsertMut builds an Insert mutation for a new category.
func (r *CategoryRepo) InsertMut(c *domain.Category) *spanner.Mutation {
	if c == nil {
		return nil
	}
	return m_category.InsertMutation(buildCategoryInsertValues(c))
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
func (r *CategoryRepo) UpdateMut(c *domain.Category) *spanner.Mutation {
	if c == nil || c.Changes() == nil || !c.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if c.Changes().Dirty(domain.CategoryFieldName) {
		updates[m_category.ColName] = c.Name()
	}
	if c.Changes().Dirty(domain.CategoryFieldDescription) {
		if c.Description() == "" {
			updates[m_category.ColDescription] = nil
		} else {
			updates[m_category.ColDescription] = c.Description()
		}
	}
	if c.Changes().Dirty(domain.CategoryFieldActive) {
		updates[m_category.ColActive] = c.IsActive()
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_category.ColUpdatedAt] = c.UpdatedAt().UTC()
	return m_category.UpdateMutation(c.ID(), updates)
}
