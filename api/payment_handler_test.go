package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/santiagoprado21/southpark-club-backend/api"
	mock_api "github.com/santiagoprado21/southpark-club-backend/api/mocks"
	"github.com/santiagoprado21/southpark-club-backend/auth"
	"github.com/santiagoprado21/southpark-club-backend/payment"
	rsv "github.com/santiagoprado21/southpark-club-backend/reservation"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupPaymentRouter(t *testing.T, user auth.User) (*gin.Engine, *gomock.Controller, *mock_api.MockPaymentService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockPaymentService(ctrl)
	handler := api.NewPaymentHandler(mockService)
	rg := router.Group("/api/v1")
	rg.Use(setUserInContext(user))
	handler.Register(rg)

	return router, ctrl, mockService
}

func setupPaymentAdminRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockPaymentService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockPaymentService(ctrl)
	handler := api.NewPaymentHandler(mockService)
	handler.RegisterAdmin(router.Group("/api/v1/admin/payments"))

	return router, ctrl, mockService
}

func TestSubmitPayment(t *testing.T) {
	body := []byte(`{"reservationId":"res1","type":"reservation"}`)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		captured := payment.Payment{
			ID:            "pay1",
			ReservationID: "res1",
			Amount:        12,
			Type:          payment.TypeReservation,
			Status:        payment.StatusCompleted,
			Receipt:       "REC-abc",
		}
		capturedJson, _ := json.Marshal(captured)
		mockService.EXPECT().SubmitPayment(gomock.Any(), "res1", "reservation", client).Return(captured, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(capturedJson), w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("reservation not found", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().SubmitPayment(gomock.Any(), "res1", "reservation", client).Return(payment.Payment{}, rsv.ErrReservationNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"reservation not found"}`, w.Body.String())
	})

	t.Run("not the owner", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().SubmitPayment(gomock.Any(), "res1", "reservation", client).Return(payment.Payment{}, rsv.ErrNotAllowed).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed to pay for this reservation"}`, w.Body.String())
	})

	t.Run("cancelled reservation", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().SubmitPayment(gomock.Any(), "res1", "reservation", client).Return(payment.Payment{}, rsv.ErrInvalidReservationState).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 422, w.Code)
		assert.JSONEq(t, `{"error":"reservation is cancelled"}`, w.Body.String())
	})

	t.Run("already settled", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().SubmitPayment(gomock.Any(), "res1", "reservation", client).Return(payment.Payment{}, payment.ErrAlreadySettled).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 422, w.Code)
		assert.JSONEq(t, `{"error":"reservation is already settled"}`, w.Body.String())
	})

	t.Run("unknown payment type", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		badType := []byte(`{"reservationId":"res1","type":"cash"}`)
		mockService.EXPECT().SubmitPayment(gomock.Any(), "res1", "cash", client).Return(payment.Payment{}, payment.ErrInvalidPaymentType).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBuffer(badType))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"unknown payment type"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().SubmitPayment(gomock.Any(), "res1", "reservation", client).Return(payment.Payment{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to process payment"}`, w.Body.String())
	})
}

func TestListPaymentsPerReservation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		payments := []payment.Payment{
			{ID: "pay1", ReservationID: "res1", Amount: 12, Type: payment.TypeReservation},
			{ID: "pay2", ReservationID: "res1", Amount: 28, Type: payment.TypeFullPayment},
		}
		paymentsJson, _ := json.MarshalIndent(payments, "", "    ")
		mockService.EXPECT().FindPaymentsPerReservation(gomock.Any(), "res1", client).Return(payments, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations/res1/payments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(paymentsJson), w.Body.String())
	})

	t.Run("reservation not found", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().FindPaymentsPerReservation(gomock.Any(), "res1", client).Return(nil, rsv.ErrReservationNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations/res1/payments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"reservation not found"}`, w.Body.String())
	})

	t.Run("not the owner", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().FindPaymentsPerReservation(gomock.Any(), "res1", client).Return(nil, rsv.ErrNotAllowed).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations/res1/payments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed to view these payments"}`, w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().FindPaymentsPerReservation(gomock.Any(), "res1", client).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations/res1/payments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to get payments"}`, w.Body.String())
	})
}

func TestListAllPayments(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentAdminRouter(t)
		defer ctrl.Finish()

		payments := []payment.Payment{{ID: "pay1"}, {ID: "pay2"}}
		paymentsJson, _ := json.MarshalIndent(payments, "", "    ")
		mockService.EXPECT().ListPayments(gomock.Any()).Return(payments, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/payments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(paymentsJson), w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentAdminRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ListPayments(gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/payments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve payments"}`, w.Body.String())
	})
}
