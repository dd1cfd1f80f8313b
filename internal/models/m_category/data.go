package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs a map with fields for category insertion.
func BuildInsertMap(categoryID, name string, description *string, active bool,
	createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColCategoryID: categoryID,
		ColName:       name,
		ColActive:     active,
		ColCreatedAt:  createdAt,
		ColUpdatedAt:  updatedAt,
	}

	if description != nil {
		m[ColDescription] = *description
	} else {
		m[ColDescription] = nil
	}

	return m
}

// InsertMutation builds a spanner.Insert mutation for a category.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a category.
// The values map should NOT include the category_id key.
func UpdateMutation(categoryID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColCategoryID}
	vals := []interface{}{categoryID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}
