package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servio_backend/internal/middleware"
	"servio_backend/internal/services"
	"servio_backend/internal/services/dto"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/reviews")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.ListReviews)
		public.GET("/:id", h.GetReview)
	}

	protected := r.Group("/reviews")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateReview)
		protected.PATCH("/:id", h.UpdateReview)
		protected.DELETE("/:id", h.DeleteReview)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	params := dto.ListReviewsParams{
		BusinessUserID: c.Query("business_user_id"),
		ReviewerID:     c.Query("reviewer_id"),
		Ordering:       c.Query("ordering"),
	}

	reviews, err := h.reviewService.List(params)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	created, err := h.reviewService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, isStaff := h.Actor(c)

	var req dto.UpdateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.reviewService.Update(userID, isStaff, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, isStaff := h.Actor(c)

	if err := h.reviewService.Delete(userID, isStaff, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
