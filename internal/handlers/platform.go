// internal/handlers/platform.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/selltrack/selltrack-backend/internal/services"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

type PlatformHandler struct {
	platformService  *services.PlatformService
	analyticsService *services.AnalyticsService
}

func NewPlatformHandler(platformService *services.PlatformService, analyticsService *services.AnalyticsService) *PlatformHandler {
	return &PlatformHandler{
		platformService:  platformService,
		analyticsService: analyticsService,
	}
}

// GET /platforms
func (h *PlatformHandler) GetPlatforms(c *gin.Context) {
	activeOnly := false
	if activeStr := c.Query("active"); activeStr != "" {
		if active, err := strconv.ParseBool(activeStr); err == nil {
			activeOnly = active
		}
	}

	platforms, err := h.platformService.ListPlatforms(activeOnly)
	if err != nil {
		serviceErrorResponse(c, err, "Platform")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"platforms": platforms,
	})
}

// GET /platforms/:id
func (h *PlatformHandler) GetPlatform(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	platform, err := h.platformService.GetPlatform(id)
	if err != nil {
		serviceErrorResponse(c, err, "Platform")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"platform": platform,
	})
}

// POST /platforms (admin)
func (h *PlatformHandler) CreatePlatform(c *gin.Context) {
	var req services.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	platform, err := h.platformService.CreatePlatform(&req)
	if err != nil {
		serviceErrorResponse(c, err, "Platform")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"platform": platform,
	})
}

// PUT /platforms/:id (admin)
func (h *PlatformHandler) UpdatePlatform(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	platform, err := h.platformService.UpdatePlatform(id, &req)
	if err != nil {
		serviceErrorResponse(c, err, "Platform")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"platform": platform,
	})
}

// DELETE /platforms/:id (admin)
func (h *PlatformHandler) DeletePlatform(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.platformService.DeletePlatform(id); err != nil {
		serviceErrorResponse(c, err, "Platform")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deleted": true,
	})
}

// GET /platforms/stats
func (h *PlatformHandler) GetPlatformStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.PlatformTotals(userID)
	if err != nil {
		serviceErrorResponse(c, err, "Platform")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"platform_stats": stats,
	})
}
