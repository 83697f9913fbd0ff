package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Ezio016/MyFridge/internal/domain"
)

func TestHandleAddShoppingItem(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockShoppingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing name",
			reqBody:        AddShoppingItemRequest{Note: "weekly"},
			setupMocks:     func(ms *MockShoppingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:    "Success",
			reqBody: AddShoppingItemRequest{Name: "chickpea flour", Note: "for pancakes"},
			setupMocks: func(ms *MockShoppingService) {
				ms.On("Add", mock.Anything, "chickpea flour", "for pancakes").
					Return(&domain.ShoppingItem{ID: 3, Name: "chickpea flour", Note: "for pancakes"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"chickpea flour"`,
		},
		{
			name:    "Service rejects input",
			reqBody: AddShoppingItemRequest{Name: "x"},
			setupMocks: func(ms *MockShoppingService) {
				ms.On("Add", mock.Anything, "x", "").Return(nil, domain.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidInputError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockShoppingService)
			tt.setupMocks(mockSvc)

			var body bytes.Buffer
			json.NewEncoder(&body).Encode(tt.reqBody)

			req := httptest.NewRequest(http.MethodPost, "/shopping", &body)
			rec := httptest.NewRecorder()

			HandleAddShoppingItem(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleSetPurchased(t *testing.T) {
	mockSvc := new(MockShoppingService)
	mockSvc.On("SetPurchased", mock.Anything, 4, true).
		Return(&domain.ShoppingItem{ID: 4, Name: "milk", Purchased: true}, nil)

	r := chi.NewRouter()
	r.Patch("/shopping/{id}", HandleSetPurchased(mockSvc))

	var body bytes.Buffer
	json.NewEncoder(&body).Encode(SetPurchasedRequest{Purchased: true})

	req := httptest.NewRequest(http.MethodPatch, "/shopping/4", &body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"purchased":true`)
}

func TestHandleClearPurchased(t *testing.T) {
	mockSvc := new(MockShoppingService)
	mockSvc.On("ClearPurchased", mock.Anything).Return(5, nil)

	req := httptest.NewRequest(http.MethodDelete, "/shopping/purchased", nil)
	rec := httptest.NewRecorder()
	HandleClearPurchased(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"removed":5`)
}

func TestHandleQueueMissingIngredients(t *testing.T) {
	tests := []struct {
		name           string
		recipeID       string
		setupMocks     func(*MockShoppingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Queues missing mains",
			recipeID: "chickpea-flour-pancakes",
			setupMocks: func(ms *MockShoppingService) {
				ms.On("AddMissingFromRecipe", mock.Anything, "chickpea-flour-pancakes").
					Return([]domain.ShoppingItem{{ID: 1, Name: "chickpea flour"}}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"count":1`,
		},
		{
			name:     "Unknown recipe",
			recipeID: "nope",
			setupMocks: func(ms *MockShoppingService) {
				ms.On("AddMissingFromRecipe", mock.Anything, "nope").
					Return(nil, domain.ErrRecipeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgRecipeNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockShoppingService)
			tt.setupMocks(mockSvc)

			r := chi.NewRouter()
			r.Post("/shopping/from-recipe/{id}", HandleQueueMissingIngredients(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/shopping/from-recipe/"+tt.recipeID, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}
