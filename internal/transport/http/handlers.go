package httpt

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
	_submitContextTimeout  = 3 * time.Second
)

type addItemRequest struct {
	ItemID   int `json:"item_id"  binding:"required,gte=1"`
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

type updateLineRequest struct {
	Quantity *int    `json:"quantity,omitempty" binding:"omitempty,gte=1"`
	Size     *string `json:"size,omitempty"`
}

type setDeliveryRequest struct {
	DeliveryID string `json:"delivery_id" binding:"required"`
}

type setAddressRequest struct {
	Street              string `json:"street"               binding:"required,max=200"`
	City                string `json:"city"                 binding:"required,max=100"`
	State               string `json:"state"                binding:"required,max=50"`
	Zip                 string `json:"zip"                  binding:"required,max=20"`
	Phone               string `json:"phone"                binding:"required,max=30"`
	SpecialInstructions string `json:"special_instructions" binding:"max=500"`
}

type setDetailsRequest struct {
	PONumber   string `json:"po_number"   binding:"max=50"`
	SiteNumber string `json:"site_number" binding:"required,max=50"`
	Notes      string `json:"notes"       binding:"max=1000"`
}

// @Summary List catalog items
// @Tags Catalog
// @Produce json
// @Success 200 {array} entity.CatalogItem
// @Router /catalog [get]
func (h *OrderHandler) getCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CatalogItems())
}

// @Summary List delivery options
// @Tags Catalog
// @Produce json
// @Success 200 {array} entity.DeliveryOption
// @Router /delivery-options [get]
func (h *OrderHandler) getDeliveryOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.DeliveryOptions())
}

// @Summary Open a new order draft
// @Tags Drafts
// @Produce json
// @Success 201 {object} entity.OrderDraft
// @Router /drafts [post]
func (h *OrderHandler) createDraftHandler(c *gin.Context) {
	const op = "transport.createDraftHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	draft, err := h.svc.CreateDraft(ctx)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusCreated, h.draftResponse(c.Request.Context(), draft))
}

// @Summary Get an order draft
// @Tags Drafts
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Success 200 {object} entity.OrderDraft
// @Failure 404 {object} httpt.ErrorResponse "Draft not found or expired"
// @Router /drafts/{draft_id} [get]
func (h *OrderHandler) getDraftHandler(c *gin.Context) {
	const op = "transport.getDraftHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	draft, err := h.svc.GetDraft(c.Request.Context(), draftID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, h.draftResponse(c.Request.Context(), draft))
}

// @Summary Price a draft
// @Description Returns subtotal, delivery fee and total for the draft's current cart.
// @Tags Drafts
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Success 200 {object} pricing.Totals
// @Failure 404 {object} httpt.ErrorResponse "Draft not found or expired"
// @Router /drafts/{draft_id}/totals [get]
func (h *OrderHandler) getDraftTotalsHandler(c *gin.Context) {
	const op = "transport.getDraftTotalsHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	totals, err := h.svc.DraftTotals(c.Request.Context(), draftID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// @Summary Add an item to a draft
// @Description Rejects quantities below the item's minimum order. Adding an item already in the cart merges quantities.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Param request body httpt.addItemRequest true "Item and quantity"
// @Success 200 {object} entity.OrderDraft
// @Failure 400 {object} httpt.ErrorResponse "Below minimum order or item unavailable"
// @Failure 404 {object} httpt.ErrorResponse "Draft or item not found"
// @Failure 409 {object} httpt.ErrorResponse "Draft already submitted"
// @Router /drafts/{draft_id}/lines [post]
func (h *OrderHandler) addItemHandler(c *gin.Context) {
	const op = "transport.addItemHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	draft, err := h.svc.AddItem(c.Request.Context(), draftID, req.ItemID, req.Quantity)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, h.draftResponse(c.Request.Context(), draft))
}

// @Summary Update a cart line
// @Description Changes quantity (clamped up to the item's minimum) and/or container size.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Param item_id path int true "Catalog item identifier"
// @Param request body httpt.updateLineRequest true "Fields to change"
// @Success 200 {object} entity.OrderDraft
// @Failure 400 {object} httpt.ErrorResponse "Size not permitted for this item"
// @Failure 404 {object} httpt.ErrorResponse "Draft or line not found"
// @Router /drafts/{draft_id}/lines/{item_id} [patch]
func (h *OrderHandler) updateLineHandler(c *gin.Context) {
	const op = "transport.updateLineHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	itemID, ok := h.itemID(c, op)
	if !ok {
		return
	}

	var req updateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx := c.Request.Context()

	var draft *entity.OrderDraft
	var err error

	if req.Quantity != nil {
		draft, err = h.svc.SetQuantity(ctx, draftID, itemID, *req.Quantity)
		if err != nil {
			h.handleServiceError(c, err, op)
			return
		}
	}
	if req.Size != nil {
		draft, err = h.svc.SetContainerSize(ctx, draftID, itemID, *req.Size)
		if err != nil {
			h.handleServiceError(c, err, op)
			return
		}
	}

	if draft == nil {
		draft, err = h.svc.GetDraft(ctx, draftID)
		if err != nil {
			h.handleServiceError(c, err, op)
			return
		}
	}

	c.JSON(http.StatusOK, h.draftResponse(c.Request.Context(), draft))
}

// @Summary Remove an item from a draft
// @Tags Drafts
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Param item_id path int true "Catalog item identifier"
// @Success 200 {object} entity.OrderDraft
// @Failure 404 {object} httpt.ErrorResponse "Draft not found"
// @Router /drafts/{draft_id}/lines/{item_id} [delete]
func (h *OrderHandler) removeItemHandler(c *gin.Context) {
	const op = "transport.removeItemHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	itemID, ok := h.itemID(c, op)
	if !ok {
		return
	}

	draft, err := h.svc.RemoveItem(c.Request.Context(), draftID, itemID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, h.draftResponse(c.Request.Context(), draft))
}

// @Summary Select a delivery option
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Param request body httpt.setDeliveryRequest true "Delivery option"
// @Success 200 {object} entity.OrderDraft
// @Failure 404 {object} httpt.ErrorResponse "Draft or delivery option not found"
// @Router /drafts/{draft_id}/delivery [put]
func (h *OrderHandler) setDeliveryHandler(c *gin.Context) {
	const op = "transport.setDeliveryHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	var req setDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	draft, err := h.svc.SetDelivery(c.Request.Context(), draftID, req.DeliveryID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, h.draftResponse(c.Request.Context(), draft))
}

// @Summary Set the delivery address
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Param request body httpt.setAddressRequest true "Delivery address"
// @Success 200 {object} entity.OrderDraft
// @Failure 404 {object} httpt.ErrorResponse "Draft not found"
// @Router /drafts/{draft_id}/address [put]
func (h *OrderHandler) setAddressHandler(c *gin.Context) {
	const op = "transport.setAddressHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	var req setAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	draft, err := h.svc.SetAddress(c.Request.Context(), draftID, entity.Address{
		Street:              req.Street,
		City:                req.City,
		State:               req.State,
		Zip:                 req.Zip,
		Phone:               req.Phone,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, h.draftResponse(c.Request.Context(), draft))
}

// @Summary Set order header details
// @Description Sets PO number, site number and notes. An empty PO number is replaced with a generated one.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Param request body httpt.setDetailsRequest true "Header fields"
// @Success 200 {object} entity.OrderDraft
// @Failure 404 {object} httpt.ErrorResponse "Draft not found"
// @Router /drafts/{draft_id}/details [put]
func (h *OrderHandler) setDetailsHandler(c *gin.Context) {
	const op = "transport.setDetailsHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	var req setDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	draft, err := h.svc.SetDetails(c.Request.Context(), draftID, req.PONumber, req.SiteNumber, req.Notes)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, h.draftResponse(c.Request.Context(), draft))
}

// @Summary Submit a draft
// @Description Freezes the draft into an immutable purchase order. The draft must have a PO number, site number, complete address and at least one line.
// @Tags Drafts
// @Produce json
// @Param draft_id path string true "Draft identifier"
// @Success 201 {object} entity.PurchaseOrder
// @Failure 404 {object} httpt.ErrorResponse "Draft not found or expired"
// @Failure 409 {object} httpt.ErrorResponse "Draft already submitted"
// @Failure 422 {object} httpt.ErrorResponse "Draft not ready for submission"
// @Router /drafts/{draft_id}/submit [post]
func (h *OrderHandler) submitHandler(c *gin.Context) {
	const op = "transport.submitHandler"

	draftID, ok := h.draftID(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _submitContextTimeout)
	defer cancel()

	order, err := h.svc.Submit(ctx, draftID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// @Summary Get a submitted purchase order
// @Tags Orders
// @Produce json
// @Param order_uid path string true "Order identifier"
// @Success 200 {object} entity.PurchaseOrder
// @Failure 400 {object} httpt.ErrorResponse "Invalid order UID format"
// @Failure 404 {object} httpt.ErrorResponse "Order not found"
// @Router /orders/{order_uid} [get]
func (h *OrderHandler) getOrderHandler(c *gin.Context) {
	const op = "transport.getOrderHandler"

	log := h.log.Ctx(c.Request.Context())
	orderUIDStr := c.Param("order_uid")

	orderUID, err := uuid.Parse(orderUIDStr)
	if err != nil {
		h.handleInvalidUUID(c, op, orderUIDStr)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	order, err := h.svc.GetOrder(ctx, orderUID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "order retrieved successfully",
		logger.String("order_uid", orderUIDStr),
	)

	c.JSON(http.StatusOK, order)
}

// @Summary Download the purchase order document
// @Description Renders the order as a PDF and returns it as a file attachment.
// @Tags Orders
// @Produce application/pdf
// @Param order_uid path string true "Order identifier"
// @Success 200 {file} binary
// @Failure 400 {object} httpt.ErrorResponse "Invalid order UID format"
// @Failure 404 {object} httpt.ErrorResponse "Order not found"
// @Router /orders/{order_uid}/document [get]
func (h *OrderHandler) getDocumentHandler(c *gin.Context) {
	const op = "transport.getDocumentHandler"

	orderUIDStr := c.Param("order_uid")

	orderUID, err := uuid.Parse(orderUIDStr)
	if err != nil {
		h.handleInvalidUUID(c, op, orderUIDStr)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _submitContextTimeout)
	defer cancel()

	data, filename, err := h.svc.Document(ctx, orderUID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *OrderHandler) draftID(c *gin.Context, op string) (uuid.UUID, bool) {
	value := c.Param("draft_id")

	draftID, err := uuid.Parse(value)
	if err != nil {
		h.handleInvalidUUID(c, op, value)
		return uuid.Nil, false
	}
	return draftID, true
}

func (h *OrderHandler) itemID(c *gin.Context, op string) (int, bool) {
	value := c.Param("item_id")

	itemID, err := strconv.Atoi(value)
	if err != nil || itemID < 1 {
		h.log.Ctx(c.Request.Context()).Warnw("invalid item id",
			"op", op,
			"value", value,
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return 0, false
	}
	return itemID, true
}

// draftResponse decorates a draft with its derived status and, when the cart
// prices cleanly, its recomputed totals.
func (h *OrderHandler) draftResponse(ctx context.Context, draft *entity.OrderDraft) gin.H {
	resp := gin.H{
		"draft":  draft,
		"status": draft.Status(),
	}
	if totals, err := h.svc.DraftTotals(ctx, draft.DraftID); err == nil {
		resp["totals"] = totals
	}
	return resp
}
