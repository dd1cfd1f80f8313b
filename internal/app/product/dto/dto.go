package dto

// ProductDTO contains full product fields returned by read queries.
// Value objects are unwrapped to primitives at this boundary: the price is a
// decimal string, the stock a plain count. Timestamps use *string (RFC3339)
// to mirror how they come from Spanner; use the utils helpers to parse them.
type ProductDTO struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Price         string  `json:"price"`
	StockQuantity int64   `json:"stockQuantity"`
	CategoryID    string  `json:"categoryId"`
	CategoryName  string  `json:"categoryName"`
	IsLowStock    bool    `json:"isLowStock"`
	Version       int64   `json:"version"`
	CreatedAt     *string `json:"createdAt,omitempty"`
	UpdatedAt     *string `json:"updatedAt,omitempty"`
	DeletedAt     *string `json:"deletedAt,omitempty"`
}

// CategoryDTO contains category fields returned by read queries.
// ProductCount counts live (non-deleted) products in the category.
type CategoryDTO struct {
	CategoryID   string  `json:"categoryId"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Active       bool    `json:"active"`
	ProductCount int64   `json:"productCount"`
	CreatedAt    *string `json:"createdAt,omitempty"`
	UpdatedAt    *string `json:"updatedAt,omitempty"`
}
