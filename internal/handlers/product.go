// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/selltrack/selltrack-backend/internal/models"
	"github.com/selltrack/selltrack-backend/internal/services"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

type ProductHandler struct {
	productService   *services.ProductService
	analyticsService *services.AnalyticsService
}

func NewProductHandler(productService *services.ProductService, analyticsService *services.AnalyticsService) *ProductHandler {
	return &ProductHandler{
		productService:   productService,
		analyticsService: analyticsService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if category := c.Query("category"); category != "" {
		productCategory := models.ProductCategory(category)
		params.Category = &productCategory
	}
	if status := c.Query("status"); status != "" {
		productStatus := models.ProductStatus(status)
		params.Status = &productStatus
	}

	products, total, err := h.productService.ListProducts(userID, params)
	if err != nil {
		serviceErrorResponse(c, err, "Product")
		return
	}

	result := utils.CreatePaginationResult(products, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(userID, &req)
	if err != nil {
		serviceErrorResponse(c, err, "Product")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(id, userID)
	if err != nil {
		serviceErrorResponse(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(id, userID, &req)
	if err != nil {
		serviceErrorResponse(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(id, userID); err != nil {
		serviceErrorResponse(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deleted": true,
	})
}

// GET /products/:id/listings
func (h *ProductHandler) GetProductListings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	listings, err := h.productService.GetProductListings(id, userID)
	if err != nil {
		serviceErrorResponse(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listings": listings,
	})
}

// GET /products/:id/totals
func (h *ProductHandler) GetProductTotals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	totals, err := h.analyticsService.ProductTotals(id, userID)
	if err != nil {
		serviceErrorResponse(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"totals": totals,
	})
}
