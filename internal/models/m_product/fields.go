package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID     = "product_id"
	ColName          = "name"
	ColDescription   = "description"
	ColPrice         = "price"
	ColStockQuantity = "stock_quantity"
	ColCategoryID    = "category_id"
	ColVersion       = "version"
	ColCreatedAt     = "created_at"
	ColUpdatedAt     = "updated_at"
	ColDeletedAt     = "deleted_at"
)
