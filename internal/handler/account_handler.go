package handler

import (
	"errors"
	"net/http"

	"storefront/internal/auth"
	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccountHandler handles user and seller signup, credential checks and the
// token-issuing login.
type AccountHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(svc service.AuthService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		service: svc,
		logger:  logger.With().Str("handler", "account").Logger(),
	}
}

// Login handles POST /user/login requests. A credential mismatch is 404; a
// token signing failure is 500. Success returns the account and the token.
func (h *AccountHandler) Login(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, model.ResultResponse{Result: "error logging in user"})
		return
	}

	account, token, err := h.service.Login(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ResultResponse{Result: "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ResultResponse{Result: "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account, "auth": token})
}

// RegisterUser handles POST /user requests.
func (h *AccountHandler) RegisterUser(c *gin.Context) {
	h.register(c, auth.PrincipalUser)
}

// RegisterSeller handles POST /seller requests.
func (h *AccountHandler) RegisterSeller(c *gin.Context) {
	h.register(c, auth.PrincipalSeller)
}

func (h *AccountHandler) register(c *gin.Context, kind string) {
	var account model.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.service.Register(c.Request.Context(), kind, &account)
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to sign up "+kind)
		return
	}

	c.JSON(http.StatusCreated, stored)
}

// CheckUser handles GET /user?email=&password= requests.
func (h *AccountHandler) CheckUser(c *gin.Context) {
	h.check(c, auth.PrincipalUser)
}

// CheckSeller handles GET /seller?email=&password= requests.
func (h *AccountHandler) CheckSeller(c *gin.Context) {
	h.check(c, auth.PrincipalSeller)
}

func (h *AccountHandler) check(c *gin.Context, kind string) {
	email := c.Query("email")
	password := c.Query("password")

	account, err := h.service.Check(c.Request.Context(), kind, email, password)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respondError(c, http.StatusNotFound, "invalid email or password")
			return
		}
		respondError(c, http.StatusBadRequest, "error logging in "+kind)
		return
	}

	c.JSON(http.StatusOK, account)
}
