package product

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the REST routes onto a gin engine.
func NewRouter(h *Handler, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("", h.CreateProduct)
			products.GET("", h.ListProducts)
			products.GET("/:id", h.GetProduct)
			products.PATCH("/:id", h.UpdateProduct)
			products.PUT("/:id/stock", h.UpdateStock)
			products.PUT("/:id/category", h.ChangeCategory)
			products.DELETE("/:id", h.DeleteProduct)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", h.CreateCategory)
			categories.GET("", h.ListCategories)
			categories.GET("/:id", h.GetCategory)
			categories.PATCH("/:id", h.UpdateCategory)
			categories.PUT("/:id/status", h.SetCategoryStatus)
		}
	}

	return r
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
