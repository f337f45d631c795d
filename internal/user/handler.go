package user

import (
	"net/http"

	"helpcenter-backend/internal/auth"
	"helpcenter-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service   Service
	jwtSecret []byte
}

func NewHandler(service Service, jwtSecret []byte) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) Register(c *gin.Context) {
	var form RegisterRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	newUser := &User{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	}

	if err := h.service.Register(newUser); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, newUser.ToSafeUser())
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var form LoginRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	loggedIn, err := h.service.Login(form.Email, form.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := auth.GenerateJWT(loggedIn.ID, loggedIn.Role, h.jwtSecret)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  loggedIn.ToSafeUser(),
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	profile, err := h.service.GetUserByID(userID)
	if err != nil {
		c.Error(errors.NotFound("User not found", err))
		return
	}

	c.JSON(http.StatusOK, profile.ToSafeUser())
}
