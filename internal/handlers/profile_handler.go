package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servio_backend/internal/middleware"
	"servio_backend/internal/services"
	"servio_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("/:id", h.GetProfile)
		profile.PATCH("/:id", h.UpdateProfile)
	}

	profiles := r.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/business", h.ListBusinessProfiles)
		profiles.GET("/customer", h.ListCustomerProfiles)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, isStaff := h.Actor(c)

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	updated, err := h.profileService.Update(userID, isStaff, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProfileHandler) ListBusinessProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListBusiness()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) ListCustomerProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListCustomer()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}
