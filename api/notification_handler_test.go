package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/santiagoprado21/southpark-club-backend/api"
	mock_api "github.com/santiagoprado21/southpark-club-backend/api/mocks"
	"github.com/santiagoprado21/southpark-club-backend/auth"
	"github.com/santiagoprado21/southpark-club-backend/notification"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupNotificationRouter(t *testing.T, user auth.User) (*gin.Engine, *gomock.Controller, *mock_api.MockNotificationService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockNotificationService(ctrl)
	handler := api.NewNotificationHandler(mockService)
	rg := router.Group("/api/v1/notifications")
	rg.Use(setUserInContext(user))
	handler.Register(rg)

	return router, ctrl, mockService
}

func TestListNotifications(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, client)
		defer ctrl.Finish()

		notifications := []notification.Notification{
			{ID: "n1", UserID: client.ID, Title: "Reserva Creada"},
			{ID: "n2", UserID: client.ID, Title: "Pago Recibido", Read: true},
		}
		notificationsJson, _ := json.MarshalIndent(notifications, "", "    ")
		mockService.EXPECT().FindNotificationsPerUser(gomock.Any(), client.ID).Return(notifications, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/notifications", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(notificationsJson), w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().FindNotificationsPerUser(gomock.Any(), client.ID).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/notifications", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to get notifications"}`, w.Body.String())
	})
}

func TestMarkNotificationRead(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().MarkRead(gomock.Any(), "n1", client.ID).Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/notifications/n1/read", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"notification read"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().MarkRead(gomock.Any(), "n1", client.ID).Return(notification.ErrNotificationNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/notifications/n1/read", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"notification not found"}`, w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupNotificationRouter(t, client)
		defer ctrl.Finish()

		mockService.EXPECT().MarkRead(gomock.Any(), "n1", client.ID).Return(assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/notifications/n1/read", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to update notification"}`, w.Body.String())
	})
}
