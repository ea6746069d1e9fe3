package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"photoapp/internal/models"
	"photoapp/internal/service"
)

func TestTestHandler(t *testing.T) {
	loaded := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		param          string
		mockSetup      func(*MockInfoService)
		expectedStatus int
		checkBody      func(*testing.T, []byte)
	}{
		{
			name:  "Версия схемы без параметра",
			param: "",
			mockSetup: func(svc *MockInfoService) {
				svc.On("GetSchemaInfo", mock.Anything).Return(&models.SchemaInfo{
					SchemaInfoID: "s1",
					Version:      3,
					LoadDateTime: loaded,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var got models.SchemaInfo
				assert.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, 3, got.Version)
			},
		},
		{
			name:  "Версия схемы по параметру info",
			param: "info",
			mockSetup: func(svc *MockInfoService) {
				svc.On("GetSchemaInfo", mock.Anything).Return(&models.SchemaInfo{
					SchemaInfoID: "s1",
					Version:      3,
					LoadDateTime: loaded,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Запись schema_info отсутствует",
			param: "info",
			mockSetup: func(svc *MockInfoService) {
				svc.On("GetSchemaInfo", mock.Anything).Return(nil, service.ErrMissingSchemaInfo)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Missing SchemaInfo")
			},
		},
		{
			name:  "Успешный подсчёт коллекций",
			param: "counts",
			mockSetup: func(svc *MockInfoService) {
				svc.On("GetCollectionCounts", mock.Anything).Return(&models.CollectionCounts{
					User:       6,
					Photo:      12,
					SchemaInfo: 1,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var got models.CollectionCounts
				assert.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, 6, got.User)
				assert.Equal(t, 12, got.Photo)
				assert.Equal(t, 1, got.SchemaInfo)
			},
		},
		{
			name:  "Ошибка подсчёта коллекций",
			param: "counts",
			mockSetup: func(svc *MockInfoService) {
				svc.On("GetCollectionCounts", mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Неизвестный параметр",
			param:          "schema",
			mockSetup:      func(svc *MockInfoService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Bad param schema")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserService := new(MockUserService)
			mockPhotoService := new(MockPhotoService)
			mockInfoService := new(MockInfoService)

			tt.mockSetup(mockInfoService)

			handler := newTestHandlers(mockUserService, mockPhotoService, mockInfoService)

			req := httptest.NewRequest(http.MethodGet, "/test/"+tt.param, nil)
			if tt.param != "" {
				req = mux.SetURLVars(req, map[string]string{"p1": tt.param})
			}
			rr := httptest.NewRecorder()

			handler.TestHandler(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
			mockInfoService.AssertExpectations(t)
		})
	}
}
