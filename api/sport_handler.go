package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santiagoprado21/southpark-club-backend/sport"
)

type SportService interface {
	ListSports(ctx context.Context, includeDisabled bool) ([]sport.Sport, error)
	FindSportByID(ctx context.Context, id string) (sport.Sport, error)
	UpdateSport(ctx context.Context, id string, patch sport.Patch) (sport.Sport, error)
}

type SportHandler struct {
	service SportService
}

func NewSportHandler(service SportService) *SportHandler {
	return &SportHandler{service: service}
}

// Register mounts the public catalog routes. Disabled sports are hidden
// from clients.
func (h *SportHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

// RegisterAdmin mounts the management routes; the caller wraps the group
// with SessionAuth and AdminOnly.
func (h *SportHandler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.ListAll)
	rg.PATCH("/:id", h.Update)
}

func (h *SportHandler) List(c *gin.Context) {
	sports, err := h.service.ListSports(c.Request.Context(), false)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve sports"})
		return
	}

	c.IndentedJSON(http.StatusOK, sports)
}

func (h *SportHandler) ListAll(c *gin.Context) {
	sports, err := h.service.ListSports(c.Request.Context(), true)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve sports"})
		return
	}

	c.IndentedJSON(http.StatusOK, sports)
}

func (h *SportHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	found, err := h.service.FindSportByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, sport.ErrSportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sport not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sport"})
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

func (h *SportHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patch sport.Patch

	if err := c.BindJSON(&patch); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.UpdateSport(c.Request.Context(), id, patch)

	if err != nil {
		c.Error(err)
		if errors.Is(err, sport.ErrSportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sport not found"})
		} else if errors.Is(err, sport.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sport fields"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sport"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}
