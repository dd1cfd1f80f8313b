package m_category

// Field constants for the categories table.
const (
	TableName = "categories"

	ColCategoryID  = "category_id"
	ColName        = "name"
	ColDescription = "description"
	ColActive      = "active"
	ColCreatedAt   = "created_at"
	ColUpdatedAt   = "updated_at"
)
