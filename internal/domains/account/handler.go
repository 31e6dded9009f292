package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookclub-backend/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// Register - POST /v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	acct, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, httpStatus(err), "REGISTER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, acct)
}

// Login - POST /v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	auth, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, httpStatus(err), "LOGIN_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, auth)
}

func httpStatus(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	return ToHTTPStatus(err)
}
