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
	"github.com/santiagoprado21/southpark-club-backend/sport"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupSportRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockSportService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockSportService(ctrl)
	handler := api.NewSportHandler(mockService)
	handler.Register(router.Group("/api/v1/sports"))

	return router, ctrl, mockService
}

func setupSportAdminRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockSportService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockSportService(ctrl)
	handler := api.NewSportHandler(mockService)
	handler.RegisterAdmin(router.Group("/api/v1/admin/sports"))

	return router, ctrl, mockService
}

func TestListSports(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupSportRouter(t)
		defer ctrl.Finish()

		sports := []sport.Sport{
			{ID: "padel", Name: "Pádel", Courts: 2, Price: 40, Enabled: true},
			{ID: "tenis", Name: "Tenis", Courts: 3, Price: 35, Enabled: true},
		}
		sportsJson, _ := json.MarshalIndent(sports, "", "    ")
		mockService.EXPECT().ListSports(gomock.Any(), false).Return(sports, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/sports", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(sportsJson), w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupSportRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().ListSports(gomock.Any(), false).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/sports", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve sports"}`, w.Body.String())
	})
}

func TestGetSportByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupSportRouter(t)
		defer ctrl.Finish()

		s := sport.Sport{ID: "padel", Name: "Pádel", Courts: 2, Price: 40, Enabled: true}
		sJson, _ := json.MarshalIndent(s, "", "    ")
		mockService.EXPECT().FindSportByID(gomock.Any(), "padel").Return(s, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/sports/padel", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(sJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupSportRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindSportByID(gomock.Any(), "golf").Return(sport.Sport{}, sport.ErrSportNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/sports/golf", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"sport not found"}`, w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupSportRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindSportByID(gomock.Any(), "padel").Return(sport.Sport{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/sports/padel", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to fetch sport"}`, w.Body.String())
	})
}

func TestListAllSports(t *testing.T) {
	router, ctrl, mockService := setupSportAdminRouter(t)
	defer ctrl.Finish()

	sports := []sport.Sport{
		{ID: "padel", Enabled: true},
		{ID: "squash", Enabled: false},
	}
	sportsJson, _ := json.MarshalIndent(sports, "", "    ")
	mockService.EXPECT().ListSports(gomock.Any(), true).Return(sports, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/admin/sports", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(sportsJson), w.Body.String())
}

func TestUpdateSport(t *testing.T) {
	body := []byte(`{"price":45,"enabled":false}`)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupSportAdminRouter(t)
		defer ctrl.Finish()

		updated := sport.Sport{ID: "padel", Name: "Pádel", Courts: 2, Price: 45, Enabled: false}
		updatedJson, _ := json.MarshalIndent(updated, "", "    ")
		mockService.EXPECT().UpdateSport(gomock.Any(), "padel", gomock.Any()).Return(updated, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/admin/sports/padel", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(updatedJson), w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupSportAdminRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/admin/sports/padel", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupSportAdminRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateSport(gomock.Any(), "golf", gomock.Any()).Return(sport.Sport{}, sport.ErrSportNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/admin/sports/golf", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"sport not found"}`, w.Body.String())
	})

	t.Run("invalid fields", func(t *testing.T) {
		router, ctrl, mockService := setupSportAdminRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateSport(gomock.Any(), "padel", gomock.Any()).Return(sport.Sport{}, sport.ErrValidation).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/admin/sports/padel", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid sport fields"}`, w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupSportAdminRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateSport(gomock.Any(), "padel", gomock.Any()).Return(sport.Sport{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/admin/sports/padel", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to update sport"}`, w.Body.String())
	})
}
