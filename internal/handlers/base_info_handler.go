package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servio_backend/internal/services"
)

type BaseInfoHandler struct {
	*BaseHandler
	baseInfoService services.BaseInfoService
}

func NewBaseInfoHandler(base *BaseHandler, baseInfoService services.BaseInfoService) *BaseInfoHandler {
	return &BaseInfoHandler{
		BaseHandler:     base,
		baseInfoService: baseInfoService,
	}
}

func (h *BaseInfoHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/base-info", h.GetBaseInfo)
}

func (h *BaseInfoHandler) GetBaseInfo(c *gin.Context) {
	info, err := h.baseInfoService.Get()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
