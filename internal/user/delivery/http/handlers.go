package http

import (
	"github.com/gin-gonic/gin"

	"storefront/pkg/response"
)

// Create godoc
// @Summary     Register a user
// @Description Creates a user. Emails are unique, compared case-insensitively.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     201  {object} userResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Email already registered"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Create: %v", err)
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newUserResp(output.User))
}

// Detail godoc
// @Summary     Get user detail
// @Description Returns a single user by ID.
// @Tags        Users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{id} [GET]
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

	response.OK(c, newUserResp(output.User))
}
