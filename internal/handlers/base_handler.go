package handlers

import (
	"watchparty_backend/internal/validator"
	"watchparty_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs: request validation,
// error rendering and access to the per-request database handle.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{Validator: v}
}

// GetDB returns the database handle the middleware attached. A missing handle
// is a wiring bug, not a runtime condition.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		panic("database handle missing from request context")
	}
	return db
}

// BindAndValidateJSON binds the JSON body into obj and validates it. On
// failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	if err := h.Validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if apperrors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
		}
		return false
	}
	return true
}

// BindQuery binds query string parameters into obj.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return true
}

// MemberID returns the authenticated member id set by the auth middleware.
// Routes behind AuthMiddleware always have it; the error path covers
// misconfigured routes.
func (h *BaseHandler) MemberID(c *gin.Context) (string, bool) {
	memberID := c.GetString("memberID")
	if memberID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return memberID, true
}

// HandleServiceError renders a service-layer error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
