package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santiagoprado21/southpark-club-backend/auth"
)

type AuthService interface {
	Login(ctx context.Context, email, password, name string) (auth.Session, error)
	GetSession(token string) (auth.User, error)
	Logout(token string)
	UpdateProfile(ctx context.Context, token string, user auth.User, patch auth.ProfilePatch) (auth.User, error)
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)

	authed := rg.Group("")
	authed.Use(SessionAuth(h.service))
	authed.POST("/logout", h.Logout)
	authed.GET("/profile", h.GetProfile)
	authed.PUT("/profile", h.UpdateProfile)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password, req.Name)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.MustGet("accessToken").(string)
	h.service.Logout(token)

	c.IndentedJSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	c.IndentedJSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	token := c.MustGet("accessToken").(string)

	var patch auth.ProfilePatch

	if err := c.BindJSON(&patch); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), token, user, patch)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile fields"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}
