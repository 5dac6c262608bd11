package http

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/response"
)

// Create godoc
// @Summary     Create an order
// @Description Creates a new order with status "created".
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Order data"
// @Success     201  {object} orderResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict"
// @Failure     422  {object} response.Resp "Invalid reference"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/orders [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "order.delivery.http.Create: %v", err)
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// Detail godoc
// @Summary     Get order detail
// @Description Returns a single order by its ID.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       id path int true "Order ID"
// @Success     200 {object} orderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/orders/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, req.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}
