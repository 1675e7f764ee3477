package httpt

import (
	"net/http"

	_ "github.com/saharshred/renu-biome/docs" // for swagger

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           ReNu-Biome Order API
// @version         1.0
// @description     Purchase order composition and pricing for agricultural soil products
// @contact.name    API Support
// @contact.email   support@renu-biome.example
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https
func (h *OrderHandler) setupRoutes() {
	h.router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	v1 := h.router.Group("/api/v1")
	{
		v1.GET("/catalog", h.getCatalogHandler)
		v1.GET("/delivery-options", h.getDeliveryOptionsHandler)

		drafts := v1.Group("/drafts")
		{
			drafts.POST("", h.createDraftHandler)
			drafts.GET("/:draft_id", h.getDraftHandler)
			drafts.GET("/:draft_id/totals", h.getDraftTotalsHandler)
			drafts.POST("/:draft_id/lines", h.addItemHandler)
			drafts.PATCH("/:draft_id/lines/:item_id", h.updateLineHandler)
			drafts.DELETE("/:draft_id/lines/:item_id", h.removeItemHandler)
			drafts.PUT("/:draft_id/delivery", h.setDeliveryHandler)
			drafts.PUT("/:draft_id/address", h.setAddressHandler)
			drafts.PUT("/:draft_id/details", h.setDetailsHandler)
			drafts.POST("/:draft_id/submit", h.submitHandler)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("/:order_uid", h.getOrderHandler)
			orders.GET("/:order_uid/document", h.getDocumentHandler)
		}
	}

	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
