package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, kind string, account *model.Account) (*model.Account, error) {
	args := m.Called(ctx, kind, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, creds model.Credentials) (*model.Account, string, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.Account), args.String(1), args.Error(2)
}

func (m *MockAuthService) Check(ctx context.Context, kind, email, password string) (*model.Account, error) {
	args := m.Called(ctx, kind, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func newAccountRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAccountHandler(svc, zerolog.Nop())

	r := gin.New()
	r.POST("/user/login", h.Login)
	r.POST("/user", h.RegisterUser)
	r.GET("/user", h.CheckUser)
	r.POST("/seller", h.RegisterSeller)
	r.GET("/seller", h.CheckSeller)
	return r
}

func TestAccountHandler_Login(t *testing.T) {
	account := &model.Account{ID: primitive.NewObjectID(), Name: "Asha", Email: "asha@example.com"}

	tests := []struct {
		name           string
		body           string
		mockAccount    *model.Account
		mockToken      string
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"email":"asha@example.com","password":"s3cret"}`,
			mockAccount:    account,
			mockToken:      "signed-token",
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid credentials",
			body:           `{"email":"asha@example.com","password":"wrong"}`,
			mockError:      model.ErrNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Token failure",
			body:           `{"email":"asha@example.com","password":"s3cret"}`,
			mockError:      errors.New("failed to issue token"),
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Malformed body",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			r := newAccountRouter(svc)

			if tt.expectService {
				if tt.mockError != nil {
					svc.On("Login", mock.Anything, mock.Anything).Return(nil, "", tt.mockError)
				} else {
					svc.On("Login", mock.Anything, mock.Anything).Return(tt.mockAccount, tt.mockToken, nil)
				}
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var body map[string]json.RawMessage
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Contains(t, body, "user")
				assert.Contains(t, body, "auth")
				// The password must never appear in the response.
				assert.NotContains(t, w.Body.String(), "password")
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAccountHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		kind           string
		body           string
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "User created",
			path:           "/user",
			kind:           "user",
			body:           `{"name":"Asha","email":"asha@example.com","password":"s3cret"}`,
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Seller created",
			path:           "/seller",
			kind:           "seller",
			body:           `{"name":"Shop","email":"shop@example.com","password":"s3cret"}`,
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Malformed body",
			path:           "/user",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Storage failure",
			path:           "/user",
			kind:           "user",
			body:           `{"name":"Asha","email":"asha@example.com","password":"s3cret"}`,
			mockError:      errors.New("write failed"),
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			r := newAccountRouter(svc)

			if tt.expectService {
				if tt.mockError != nil {
					svc.On("Register", mock.Anything, tt.kind, mock.Anything).Return(nil, tt.mockError)
				} else {
					svc.On("Register", mock.Anything, tt.kind, mock.Anything).
						Return(&model.Account{ID: primitive.NewObjectID(), Email: "asha@example.com"}, nil)
				}
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAccountHandler_Check(t *testing.T) {
	account := &model.Account{ID: primitive.NewObjectID(), Email: "asha@example.com"}

	tests := []struct {
		name           string
		path           string
		kind           string
		mockReturn     *model.Account
		mockError      error
		expectedStatus int
	}{
		{
			name:           "User match",
			path:           "/user?email=asha@example.com&password=s3cret",
			kind:           "user",
			mockReturn:     account,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Seller mismatch",
			path:           "/seller?email=shop@example.com&password=wrong",
			kind:           "seller",
			mockError:      model.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Storage failure",
			path:           "/user?email=asha@example.com&password=s3cret",
			kind:           "user",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			r := newAccountRouter(svc)

			svc.On("Check", mock.Anything, tt.kind, mock.Anything, mock.Anything).
				Return(tt.mockReturn, tt.mockError)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
