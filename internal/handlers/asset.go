// internal/handlers/asset.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selltrack/selltrack-backend/internal/services"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

// RegisterAssetRoutes mounts the owner-scoped CRUD surface for one tracker
// asset type under the given path, e.g. /tracker/domains.
func RegisterAssetRoutes[T services.TrackerAsset](rg *gin.RouterGroup, path string, db *gorm.DB) {
	group := rg.Group("/" + path)

	group.GET("", func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		items, err := services.ListAssets[T](db, userID)
		if err != nil {
			serviceErrorResponse(c, err, "Asset")
			return
		}

		utils.SuccessResponse(c, gin.H{
			"items": items,
		})
	})

	group.POST("", func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			utils.BadRequestResponse(c, "", err.Error())
			return
		}

		created, err := services.CreateAsset(db, userID, &item)
		if err != nil {
			serviceErrorResponse(c, err, "Asset")
			return
		}

		utils.CreatedResponse(c, gin.H{
			"item": created,
		})
	})

	group.GET("/:id", func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		item, err := services.GetAsset[T](db, id, userID)
		if err != nil {
			serviceErrorResponse(c, err, "Asset")
			return
		}

		utils.SuccessResponse(c, gin.H{
			"item": item,
		})
	})

	group.PUT("/:id", func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			utils.BadRequestResponse(c, "", err.Error())
			return
		}

		updated, err := services.UpdateAsset(db, id, userID, &item)
		if err != nil {
			serviceErrorResponse(c, err, "Asset")
			return
		}

		utils.SuccessResponse(c, gin.H{
			"item": updated,
		})
	})

	group.DELETE("/:id", func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := services.DeleteAsset[T](db, id, userID); err != nil {
			serviceErrorResponse(c, err, "Asset")
			return
		}

		utils.SuccessResponse(c, gin.H{
			"deleted": true,
		})
	})
}
