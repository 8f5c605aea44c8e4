package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"layered-user-service/internal/usecase/user"
	apperrors "layered-user-service/pkg/errors"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user.
// Validation happens in the usecase, not at the binding layer.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HealthResponse represents the fixed health acknowledgment payload
type HealthResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health handles GET /api/users
func (h *UserHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Message: "Users API is working!",
	})
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create user request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	h.log.Info("create user request", zap.String("name", req.Name), zap.String("email", req.Email))

	ucReq := user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	}

	if _, err := h.uc.CreateUser(c.Request.Context(), ucReq); err != nil {
		h.handleError(c, err)
		return
	}

	c.String(http.StatusOK, "User created successfully.")
}

// handleError converts usecase errors to HTTP responses. Only validation
// errors expose their message; everything else is reported generically so
// internal details do not leak to clients.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		h.log.Warn("create user validation failed", zap.String("field", ve.Field), zap.Error(ve))
		c.JSON(ve.HTTPStatus(), ErrorResponse{Error: ve.Error()})
		return
	}

	h.log.Error("create user failed", zap.Error(err))

	status := http.StatusInternalServerError
	var hs apperrors.HTTPStatuser
	if errors.As(err, &hs) {
		status = hs.HTTPStatus()
	}
	c.JSON(status, ErrorResponse{Error: "internal error"})
}
