package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, incoming string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})(c)
	require.NoError(t, err)

	return seen, rec.Header().Get(RequestIDHeader)
}

func TestRequestIDGenerated(t *testing.T) {
	seen, header := runRequestID(t, "")

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, header)
}

func TestRequestIDReused(t *testing.T) {
	seen, header := runRequestID(t, "upstream-id")

	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", header)
}

func TestRequestIDOversizedReplaced(t *testing.T) {
	oversized := strings.Repeat("a", maxRequestIDLength+1)

	seen, _ := runRequestID(t, oversized)

	assert.NotEqual(t, oversized, seen)
	assert.NotEmpty(t, seen)
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotNil(t, GetLogger(c))
	assert.Empty(t, GetRequestID(c))
}

func TestToHTTPError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, toHTTPError(echo.ErrNotFound).Status)
	assert.Equal(t, "Route not found", toHTTPError(echo.ErrNotFound).Message)
	assert.Equal(t, http.StatusMethodNotAllowed, toHTTPError(echo.ErrMethodNotAllowed).Status)
	assert.Equal(t, http.StatusRequestEntityTooLarge, toHTTPError(echo.ErrStatusRequestEntityTooLarge).Status)
	assert.Equal(t, http.StatusInternalServerError, toHTTPError(assert.AnError).Status)
}
