package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servio_backend/internal/middleware"
	"servio_backend/internal/services"
	"servio_backend/internal/services/dto"
)

type OfferHandler struct {
	*BaseHandler
	offerService services.OfferService
}

func NewOfferHandler(base *BaseHandler, offerService services.OfferService) *OfferHandler {
	return &OfferHandler{
		BaseHandler:  base,
		offerService: offerService,
	}
}

func (h *OfferHandler) RegisterRoutes(r *gin.RouterGroup) {
	offers := r.Group("/offers")
	offers.Use(middleware.OptionalAuthMiddleware())
	{
		offers.GET("", h.ListOffers)
		offers.GET("/:id", h.GetOffer)
	}

	protected := r.Group("/offers")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateOffer)
		protected.PATCH("/:id", h.UpdateOffer)
		protected.DELETE("/:id", h.DeleteOffer)
	}

	details := r.Group("/offerdetails")
	details.Use(middleware.OptionalAuthMiddleware())
	{
		details.GET("/:id", h.GetOfferDetail)
	}
}

func (h *OfferHandler) ListOffers(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	params := dto.ListOffersParams{
		CreatorID:       c.Query("creator_id"),
		MinPrice:        ParseQueryFloatPtr(c, "min_price"),
		MaxDeliveryTime: ParseQueryIntPtr(c, "max_delivery_time"),
		Search:          c.Query("search"),
		Ordering:        c.Query("ordering"),
		Page:            page,
		PageSize:        pageSize,
	}

	list, err := h.offerService.List(params)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.offerService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) GetOfferDetail(c *gin.Context) {
	detail, err := h.offerService.GetDetail(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	userID, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	created, err := h.offerService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	userID, isStaff := h.Actor(c)

	var req dto.UpdateOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.offerService.Update(userID, isStaff, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	userID, isStaff := h.Actor(c)

	if err := h.offerService.Delete(userID, isStaff, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
