package httpt

import (
	"context"
	"errors"
	"net/http"

	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *OrderHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
		logger.String("user_agent", c.Request.UserAgent()),
	)

	switch {
	case errors.Is(err, entity.ErrBelowMinimumOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity is below the item's minimum order"})
	case errors.Is(err, entity.ErrInvalidContainerSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Container size is not offered for this item"})
	case errors.Is(err, entity.ErrItemUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item is out of stock"})
	case errors.Is(err, entity.ErrInvalidData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
	case errors.Is(err, entity.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found or expired"})
	case errors.Is(err, entity.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Catalog item not found"})
	case errors.Is(err, entity.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item is not in the cart"})
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "order not found",
			logger.String("order_uid", c.Param("order_uid")),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, entity.ErrDraftSubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": "Draft has already been submitted"})
	case errors.Is(err, entity.ErrConflictingData):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicting data"})
	case errors.Is(err, entity.ErrIncompleteDraft):
		c.JSON(
			http.StatusUnprocessableEntity,
			gin.H{"error": "Draft is missing PO number, site number, address or items"},
		)
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out"})
	default:
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "internal server error",
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal service error"})
	}
}

func (h *OrderHandler) handleBindError(c *gin.Context, op string, err error) {
	h.log.Ctx(c.Request.Context()).Warnw("request binding failed",
		"op", op,
		"error", err,
		"remote_addr", c.ClientIP(),
	)

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

func (h *OrderHandler) handleInvalidUUID(c *gin.Context, op, value string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid identifier format",
		logger.String("op", op),
		logger.String("value", value),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identifier format"})
}
