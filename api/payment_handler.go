package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santiagoprado21/southpark-club-backend/auth"
	"github.com/santiagoprado21/southpark-club-backend/payment"
	rsv "github.com/santiagoprado21/southpark-club-backend/reservation"
)

type PaymentService interface {
	SubmitPayment(ctx context.Context, reservationID, payType string, user auth.User) (payment.Payment, error)
	FindPaymentsPerReservation(ctx context.Context, reservationID string, user auth.User) ([]payment.Payment, error)
	ListPayments(ctx context.Context) ([]payment.Payment, error)
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/payments", h.Submit)
	rg.GET("/reservations/:id/payments", h.ListPerReservation)
}

func (h *PaymentHandler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

type paymentRequest struct {
	ReservationID string `json:"reservationId"`
	Type          string `json:"type"`
}

func (h *PaymentHandler) Submit(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req paymentRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	captured, err := h.service.SubmitPayment(c.Request.Context(), req.ReservationID, req.Type, user)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		} else if errors.Is(err, rsv.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to pay for this reservation"})
		} else if errors.Is(err, rsv.ErrInvalidReservationState) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "reservation is cancelled"})
		} else if errors.Is(err, payment.ErrAlreadySettled) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "reservation is already settled"})
		} else if errors.Is(err, payment.ErrInvalidPaymentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment type"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process payment"})
		}

		return
	}

	c.JSON(http.StatusCreated, captured)
}

func (h *PaymentHandler) ListPerReservation(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	reservationID := c.Param("id")

	payments, err := h.service.FindPaymentsPerReservation(c.Request.Context(), reservationID, user)

	if err != nil {
		c.Error(err)
		if errors.Is(err, rsv.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		} else if errors.Is(err, rsv.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view these payments"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get payments"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, payments)
}

func (h *PaymentHandler) List(c *gin.Context) {
	if payments, err := h.service.ListPayments(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve payments"})
	} else {
		c.IndentedJSON(http.StatusOK, payments)
	}
}
