package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid username", apperrors.ErrInvalidUsername, http.StatusBadRequest},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"drive closed", apperrors.ErrDriveClosed, http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"document missing", apperrors.ErrDocumentNotFound, http.StatusNotFound},
		{"duplicate usn", apperrors.ErrUSNAlreadyExists, http.StatusConflict},
		{"duplicate registration", apperrors.ErrAlreadyRegistered, http.StatusConflict},
		{"wrapped sentinel", errors.Join(errors.New("lookup failed"), apperrors.ErrCompanyNotFound), http.StatusNotFound},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			HandleAPIError(c, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestHandleAPIErrorNeverLeaksInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HandleAPIError(c, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	assert.Contains(t, w.Body.String(), "SRV_001")
}
