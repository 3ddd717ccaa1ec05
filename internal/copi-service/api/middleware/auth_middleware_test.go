package middleware

import (
	apperrors "CoPI_Backend/internal/copi-service/errors"
	mocksession "CoPI_Backend/internal/copi-service/mocks/session"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupTestContext(w *httptest.ResponseRecorder) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	return c
}

func TestAuthMiddleware_RequireSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocksession.NewMockResolver(ctrl)
	a := NewAuthMiddleware(mockResolver)

	var seenUserID string
	nextHandler := func(c *gin.Context) {
		seenUserID = c.GetString(UserIDContextKey)
		c.Status(http.StatusOK)
	}

	testCases := []struct {
		name           string
		setupRequest   func(req *http.Request)
		mock           func()
		expectedStatus int
		expectedBody   string
		expectedUserID string
	}{
		{
			name:           "Failure No Authorization Header",
			setupRequest:   func(req *http.Request) {},
			mock:           func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "Failure Invalid Header Format",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "invalid-token")
			},
			mock:           func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "Failure Wrong Scheme",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Basic some-token")
			},
			mock:           func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "Failure Empty Bearer Token",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer ")
			},
			mock:           func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "Failure Resolver Rejects Token",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer invalid-token")
			},
			mock: func() {
				mockResolver.EXPECT().Resolve(gomock.Any(), "invalid-token").Return("", apperrors.ErrInvalidSession).Times(1)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "Success",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer valid-token")
			},
			mock: func() {
				mockResolver.EXPECT().Resolve(gomock.Any(), "valid-token").Return("user-123", nil).Times(1)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "",
			expectedUserID: "user-123",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seenUserID = ""
			w := httptest.NewRecorder()
			c := setupTestContext(w)
			tc.setupRequest(c.Request)
			tc.mock()
			router := gin.New()
			router.GET("/", a.RequireSession(), nextHandler)

			router.ServeHTTP(w, c.Request)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, w.Body.String())
			}
			assert.Equal(t, tc.expectedUserID, seenUserID)
		})
	}
}
