package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"servio_backend/internal/logger"
	"servio_backend/internal/middleware"
	"servio_backend/internal/validator"
	"servio_backend/pkg/apperrors"
)

// Listing page size, fixed ceiling. Clients may only shrink a page.
const (
	DefaultPage     = 1
	DefaultPageSize = 6
	MaxPageSize     = 6
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the request body and runs the tag validators.
// On failure the error response is already written.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Ungültiger Anfrageinhalt."))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Messages()...))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		logger.CtxWarn(ctx, "service error",
			"domain", appErr.Domain,
			"messages", appErr.Messages,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
		return
	}
	logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// RequireUser returns the authenticated user id, writing a 401 when absent.
func (h *BaseHandler) RequireUser(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		logger.CtxWarn(c.Request.Context(), "unauthenticated access",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentifizierung erforderlich."))
		return "", false
	}
	return userID, true
}

// Actor returns the caller identity for authorization checks; the id is empty
// for anonymous callers.
func (h *BaseHandler) Actor(c *gin.Context) (string, bool) {
	return middleware.GetUserID(c), middleware.GetIsStaff(c)
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseQueryIntPtr returns nil when the parameter is absent or malformed.
func ParseQueryIntPtr(c *gin.Context, key string) *int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return nil
	}
	return &value
}

// ParseQueryFloatPtr returns nil when the parameter is absent or malformed.
func ParseQueryFloatPtr(c *gin.Context, key string) *float64 {
	valueStr := c.Query(key)
	if valueStr == "" {
		return nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParsePagination clamps the requested page size to the fixed ceiling.
func ParsePagination(c *gin.Context) (page int, pageSize int) {
	page = ParseQueryInt(c, "page", DefaultPage)
	if page <= 0 {
		page = DefaultPage
	}

	pageSize = ParseQueryInt(c, "page_size", DefaultPageSize)
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}
