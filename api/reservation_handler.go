package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/santiagoprado21/southpark-club-backend/auth"
	rsv "github.com/santiagoprado21/southpark-club-backend/reservation"
	"github.com/santiagoprado21/southpark-club-backend/sport"
)

type ReservationService interface {
	AvailableSlots(ctx context.Context, sportID, date string, courtNumber int) ([]rsv.Slot, error)
	OccupiedSlotTally(ctx context.Context, sportID, date string) (map[string]int, error)
	CreateReservation(ctx context.Context, req rsv.CreateRequest, user auth.User) (rsv.Reservation, error)
	CancelReservation(ctx context.Context, id string, user auth.User) error
	ListReservations(ctx context.Context) ([]rsv.Reservation, error)
	FindReservationByID(ctx context.Context, id string) (rsv.Reservation, error)
	FindReservationsPerUser(ctx context.Context, userID string) ([]rsv.Reservation, error)
	SetReservationStatus(ctx context.Context, id, status string) error
	ModifyReservation(ctx context.Context, updated rsv.Reservation) error
	DeleteReservation(ctx context.Context, id string) error
	GetReservationCountPerSport(ctx context.Context) ([]rsv.SportReservationCount, error)
	GetReservationCountPerWeekDay(ctx context.Context) ([]rsv.WeekDayReservationCount, error)
	GetReservationCountPerSportInPeriod(ctx context.Context, start, end time.Time) ([]rsv.SportReservationCount, error)
}

type ReservationHandler struct {
	service ReservationService
}

func NewReservationHandler(service ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// RegisterAvailability mounts the slot lookup routes on the public sports
// group; no session is needed to browse the calendar.
func (h *ReservationHandler) RegisterAvailability(rg *gin.RouterGroup) {
	rg.GET("/:id/availability", h.GetAvailability)
	rg.GET("/:id/occupancy", h.GetOccupancy)
}

func (h *ReservationHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/mine", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id/cancel", h.Cancel)
}

func (h *ReservationHandler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.PUT("/:id/status", h.SetStatus)
	rg.PUT("/:id/modify", h.Modify)
	rg.DELETE("/:id", h.Delete)

	rg.GET("/stats/sport", h.GetSportStats)
	rg.GET("/stats/sport/period", h.GetSportStatsPerPeriod)
	rg.GET("/stats/day", h.GetStatsPerDay)
}

func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	sportID := c.Param("id")
	date := c.Query("date")
	court, err := strconv.Atoi(c.DefaultQuery("court", "1"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse court number"})
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), sportID, date, court)

	if err != nil {
		c.Error(err)
		if errors.Is(err, sport.ErrSportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sport not found"})
		} else if errors.Is(err, rsv.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability query"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get availability"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *ReservationHandler) GetOccupancy(c *gin.Context) {
	sportID := c.Param("id")
	date := c.Query("date")

	tally, err := h.service.OccupiedSlotTally(c.Request.Context(), sportID, date)

	if err != nil {
		c.Error(err)
		if errors.Is(err, sport.ErrSportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sport not found"})
		} else if errors.Is(err, rsv.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occupancy query"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get occupancy"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, tally)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req rsv.CreateRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	inserted, err := h.service.CreateReservation(c.Request.Context(), req, user)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrSlotConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot already reserved"})
		} else if errors.Is(err, sport.ErrSportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sport not found"})
		} else if errors.Is(err, sport.ErrSportDisabled) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "sport is not open for reservations"})
		} else if errors.Is(err, rsv.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation request"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reservation"})
		}

		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	reservations, err := h.service.FindReservationsPerUser(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get reservations"})
		return
	}

	c.IndentedJSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) GetByID(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	reservation, err := h.service.FindReservationByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservation"})
		return
	}

	if !user.IsAdmin() && reservation.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	c.IndentedJSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	err := h.service.CancelReservation(c.Request.Context(), id, user)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		} else if errors.Is(err, rsv.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to cancel this reservation"})
		} else if errors.Is(err, rsv.ErrCancellationWindow) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "reservations can only be cancelled 24 hours in advance"})
		} else if errors.Is(err, rsv.ErrInvalidReservationState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reservation is already cancelled"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel reservation"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}

func (h *ReservationHandler) List(c *gin.Context) {
	if reservations, err := h.service.ListReservations(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservations"})
	} else {
		c.IndentedJSON(http.StatusOK, reservations)
	}
}

func (h *ReservationHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	status := c.Query("status")

	err := h.service.SetReservationStatus(c.Request.Context(), id, status)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		} else if errors.Is(err, rsv.ErrInvalidReservationState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation state"})
		} else if errors.Is(err, rsv.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown reservation status"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reservation"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reservation updated"})
}

func (h *ReservationHandler) Modify(c *gin.Context) {
	reservation := rsv.Reservation{}
	id := c.Param("id")

	err := c.BindJSON(&reservation)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	reservation.ID = id

	err = h.service.ModifyReservation(c.Request.Context(), reservation)

	if err != nil {
		c.Error(err)

		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		} else if errors.Is(err, rsv.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation fields"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to modify reservation"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reservation modified"})
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteReservation(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reservation"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}

func (h *ReservationHandler) GetSportStats(c *gin.Context) {
	stats, err := h.service.GetReservationCountPerSport(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *ReservationHandler) GetSportStatsPerPeriod(c *gin.Context) {
	startQuery := c.Query("startPeriod")
	endQuery := c.Query("endPeriod")

	startTime, err := time.Parse(time.DateOnly, startQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse startPeriod"})
		return
	}

	endTime, err := time.Parse(time.DateOnly, endQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse endPeriod"})
		return
	}

	stats, err := h.service.GetReservationCountPerSportInPeriod(c.Request.Context(), startTime, endTime)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *ReservationHandler) GetStatsPerDay(c *gin.Context) {
	stats, err := h.service.GetReservationCountPerWeekDay(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}
