package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/strengthside/journal/internal/auth"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	defer rdb.Close()

	loginChecker := auth.NewLoginChecker(time.Hour, rdb)
	authMiddleware := NewAuthMiddlewareHandler(loginChecker)

	validToken := "valid-token"
	sessionKey := "journal-service-session||" + validToken
	redisMock.ExpectGet(sessionKey).
		SetVal(fmt.Sprintf("%d", time.Now().Add(-time.Minute).Unix()))
	invalidSessionKey := "journal-service-session||invalid-token"
	redisMock.ExpectGet(invalidSessionKey).RedisNil()

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		expectedStatusCode int
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/version",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "LoginPathWithoutToken",
			path:               "/a/login",
			method:             "POST",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "ProtectedPathWithoutToken",
			path:               "/checkins",
			method:             "GET",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/checkins",
			method:             "GET",
			token:              validToken,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "InvalidToken",
			path:               "/checkins",
			method:             "GET",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "OptionsAlwaysAllowed",
			path:               "/checkins",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("X-Journal-Token", tc.token)
			}

			authMiddleware.AuthCheck()(next).ServeHTTP(rr, req)
			assert.Equal(t, tc.expectedStatusCode, rr.Code)
		})
	}

	require.NoError(t, redisMock.ExpectationsWereMet())
}
