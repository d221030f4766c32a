package products

import (
	"net/http"

	"quoteform-app/database"
	"quoteform-app/internal/domain/products"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type productRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency" binding:"required"`
	Category    string          `json:"category" binding:"required"`
}

// productView decorates a product with its formatted price so the UI
// never has to know per-currency symbol and decimal rules.
type productView struct {
	products.Product
	DisplayPrice string `json:"display_price"`
}

func viewOf(p products.Product) productView {
	return productView{
		Product:      p,
		DisplayPrice: products.FormatPrice(p.Price, p.Currency),
	}
}

// ------------------------------
// GET /admin/products
// ------------------------------
func ListProducts(c *gin.Context) {
	var list []products.Product
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	views := make([]productView, len(list))
	for i, p := range list {
		views[i] = viewOf(p)
	}
	c.JSON(http.StatusOK, views)
}

// ------------------------------
// POST /admin/products
// ------------------------------
func CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := products.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
	}
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
		return
	}
	c.JSON(http.StatusCreated, viewOf(product))
}

// ------------------------------
// PUT /admin/products/:id
// ------------------------------
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := products.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
	}
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := database.DB.Model(&products.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"currency":    product.Currency,
			"category":    product.Category,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /admin/products/:id
// ------------------------------
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := database.DB.Delete(&products.Product{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type bulkImportRequest struct {
	Data string `json:"data" binding:"required"`
}

// ------------------------------
// POST /admin/products/import
// ------------------------------
// All rows are validated before anything is written; one bad row rejects
// the whole batch with every collected error.
func BulkImport(c *gin.Context) {
	var req bulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsed, validationErrors, err := products.ParseBulkImport(req.Data)
	if err != nil {
		if len(validationErrors) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Validation errors",
				"errors": validationErrors,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&parsed).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import products"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": len(parsed)})
}
