package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/stockroom/inventory-service/internal/app/product/domain"
	"github.com/stockroom/inventory-service/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	var description *string
	if d := p.Description(); d != "" {
		desc := d
		description = &desc
	}

	return m_product.BuildInsertMap(
		p.ID(),
		p.Name(),
		description,
		p.Price().Rat(),
		p.Stock().Value(),
		p.CategoryID(),
		p.Version(),
		p.CreatedAt().UTC(),
		p.UpdatedAt().UTC(),
	)
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
// It updates only dirty fields and always stamps updated_at when there are changes.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if p.Changes().Dirty(domain.FieldName) {
		updates[m_product.ColName] = p.Name()
	}
	if p.Changes().Dirty(domain.FieldDescription) {
		if p.Description() == "" {
			updates[m_product.ColDescription] = nil
		} else {
			updates[m_product.ColDescription] = p.Description()
		}
	}
	if p.Changes().Dirty(domain.FieldPrice) {
		updates[m_product.ColPrice] = p.Price().Rat()
	}
	if p.Changes().Dirty(domain.FieldStockQuantity) {
		updates[m_product.ColStockQuantity] = p.Stock().Value()
	}
	if p.Changes().Dirty(domain.FieldCategoryID) {
		updates[m_product.ColCategoryID] = p.CategoryID()
	}
	if p.Changes().Dirty(domain.FieldDeletedAt) {
		if p.DeletedAt() != nil {
			updates[m_product.ColDeletedAt] = p.DeletedAt().UTC()
		} else {
			updates[m_product.ColDeletedAt] = nil
		}
	}
	if p.Changes().Dirty(domain.FieldVersion) {
		updates[m_product.ColVersion] = p.Version()
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	return m_product.UpdateMutation(p.ID(), updates)
}

// DeleteMut returns a mutation to soft-delete the product.
// The aggregate must already have been transitioned via p.Delete(now).
func (r *ProductRepo) DeleteMut(p *domain.Product) *spanner.Mutation {
	return r.UpdateMut(p)
}
