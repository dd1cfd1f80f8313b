package product

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
	"github.com/stockroom/inventory-service/internal/app/product/queries/get_product"
	"github.com/stockroom/inventory-service/internal/app/product/queries/list_products"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/change_category"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/create_category"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/create_product"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/delete_product"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/set_category_status"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/update_category"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/update_product"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/update_stock"
)

// Commands groups the write-side interactors the handler dispatches to.
type Commands struct {
	CreateProduct     *create_product.Interactor
	UpdateProduct     *update_product.Interactor
	UpdateStock       *update_stock.Interactor
	ChangeCategory    *change_category.Interactor
	DeleteProduct     *delete_product.Interactor
	CreateCategory    *create_category.Interactor
	UpdateCategory    *update_category.Interactor
	SetCategoryStatus *set_category_status.Interactor
}

// Queries groups the read-side handlers. Category reads go straight through
// the read model; they carry no caching or extra validation.
type Queries struct {
	GetProduct   *get_product.Handler
	ListProducts *list_products.Handler
	ReadModel    contracts.ReadModel
}

// Handler is the REST adapter. It binds JSON, delegates to the application
// layer and maps errors to HTTP statuses; no business rules live here.
type Handler struct {
	commands Commands
	queries  Queries
	log      *slog.Logger
}

func NewHandler(commands Commands, qs Queries, log *slog.Logger) *Handler {
	return &Handler{commands: commands, queries: qs, log: log}
}

type createProductBody struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	CategoryID    string `json:"categoryId" binding:"required"`
	StockQuantity int64  `json:"stockQuantity"`
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var body createProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.commands.CreateProduct.Execute(c.Request.Context(), create_product.Request{
		Name:          body.Name,
		Description:   body.Description,
		Price:         body.Price,
		CategoryID:    body.CategoryID,
		StockQuantity: body.StockQuantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"productId": id})
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.queries.GetProduct.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListProducts(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.queries.ListProducts.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type updateProductBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var body updateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.commands.UpdateProduct.Execute(c.Request.Context(), update_product.Request{
		ProductID:   c.Param("id"),
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateStockBody struct {
	Quantity int64  `json:"quantity"`
	Mode     string `json:"mode"` // set | increase | decrease; defaults to set
}

func (h *Handler) UpdateStock(c *gin.Context) {
	var body updateStockBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Mode == "" {
		body.Mode = string(update_stock.ModeSet)
	}

	err := h.commands.UpdateStock.Execute(c.Request.Context(), update_stock.Request{
		ProductID: c.Param("id"),
		Quantity:  body.Quantity,
		Mode:      update_stock.Mode(body.Mode),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type changeCategoryBody struct {
	CategoryID string `json:"categoryId" binding:"required"`
}

func (h *Handler) ChangeCategory(c *gin.Context) {
	var body changeCategoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.commands.ChangeCategory.Execute(c.Request.Context(), change_category.Request{
		ProductID:  c.Param("id"),
		CategoryID: body.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.commands.DeleteProduct.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type categoryBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var body categoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.commands.CreateCategory.Execute(c.Request.Context(), create_category.Request{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"categoryId": id})
}

func (h *Handler) GetCategory(c *gin.Context) {
	cat, err := h.queries.ReadModel.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.queries.ReadModel.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cats})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var body categoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.commands.UpdateCategory.Execute(c.Request.Context(), update_category.Request{
		CategoryID:  c.Param("id"),
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type categoryStatusBody struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *Handler) SetCategoryStatus(c *gin.Context) {
	var body categoryStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.commands.SetCategoryStatus.Execute(c.Request.Context(), set_category_status.Request{
		CategoryID: c.Param("id"),
		Active:     *body.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
