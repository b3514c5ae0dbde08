package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))
	return w
}

func TestWriteError_MapsBusinessErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrValidation("bad input"), http.StatusBadRequest},
		{ErrUnauthenticated("no token"), http.StatusUnauthorized},
		{ErrForbidden("denied"), http.StatusForbidden},
		{ErrNotFound("missing"), http.StatusNotFound},
		{ErrConflict("duplicate"), http.StatusConflict},
	}

	for _, tc := range cases {
		w := record(func(c *gin.Context) {
			WriteError(c, tc.err, "fallback")
		})
		assert.Equal(t, tc.status, w.Code)
		assert.Contains(t, w.Body.String(), tc.err.Error())
	}
}

func TestWriteError_UnknownErrorBecomes500(t *testing.T) {
	w := record(func(c *gin.Context) {
		WriteError(c, errors.New("pq: connection reset"), "An error occurred")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred")
}

func TestWrite_HidesDetailInProduction(t *testing.T) {
	Init(true)
	t.Cleanup(func() { Init(false) })

	w := record(func(c *gin.Context) {
		Internal(c, "An error occurred", errors.New("pq: secret dsn"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret dsn")
	assert.Contains(t, w.Body.String(), "An error occurred")
}

func TestWrite_IncludesDetailOutsideProduction(t *testing.T) {
	Init(false)

	w := record(func(c *gin.Context) {
		Internal(c, "An error occurred", errors.New("boom"))
	})
	assert.Contains(t, w.Body.String(), "boom")
}
