// internal/handlers/sales.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/selltrack/selltrack-backend/internal/services"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

type SalesHandler struct {
	salesService *services.SalesService
}

func NewSalesHandler(salesService *services.SalesService) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
	}
}

// GET /listings/:id/sales
func (h *SalesHandler) GetSalesRecords(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	records, total, err := h.salesService.ListSalesRecords(listingID, userID, params)
	if err != nil {
		serviceErrorResponse(c, err, "Listing")
		return
	}

	result := utils.CreatePaginationResult(records, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /listings/:id/sales
func (h *SalesHandler) CreateSalesRecord(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateSalesRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	record, err := h.salesService.CreateSalesRecord(listingID, userID, &req)
	if err != nil {
		serviceErrorResponse(c, err, "Listing")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"sales_record": record,
	})
}

// GET /sales/:id
func (h *SalesHandler) GetSalesRecord(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.salesService.GetSalesRecord(id, userID)
	if err != nil {
		serviceErrorResponse(c, err, "Sales record")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"sales_record": record,
	})
}

// PUT /sales/:id
func (h *SalesHandler) UpdateSalesRecord(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateSalesRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	record, err := h.salesService.UpdateSalesRecord(id, userID, &req)
	if err != nil {
		serviceErrorResponse(c, err, "Sales record")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"sales_record": record,
	})
}

// DELETE /sales/:id
func (h *SalesHandler) DeleteSalesRecord(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.salesService.DeleteSalesRecord(id, userID); err != nil {
		serviceErrorResponse(c, err, "Sales record")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deleted": true,
	})
}
