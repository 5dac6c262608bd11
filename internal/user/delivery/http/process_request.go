package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var errBlankName = errors.New("name must not be blank")

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, errBlankName
	}
	return req, nil
}

func (h *handler) processDetailReq(c *gin.Context) (detailReq, error) {
	var req detailReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, nil
}
