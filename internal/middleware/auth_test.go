package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, method, target, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	return c
}

func TestSessionIDFromHeader(t *testing.T) {
	c := testContext(t, "GET", "/api/v1/materials/list?session_id=from-query", "")
	c.Request.Header.Set(SessionHeader, "from-header")

	assert.Equal(t, "from-header", SessionID(c))
}

func TestSessionIDFromQuery(t *testing.T) {
	c := testContext(t, "GET", "/api/v1/materials/list?session_id=from-query", "")
	assert.Equal(t, "from-query", SessionID(c))
}

func TestSessionIDFromJSONBody(t *testing.T) {
	c := testContext(t, "POST", "/api/v1/materials/add", `{"session_id":"from-body","name":"Цемент"}`)
	assert.Equal(t, "from-body", SessionID(c))

	// the body must still be readable by the handler
	body, err := io.ReadAll(c.Request.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Цемент")
}

func TestSessionIDIgnoresBodyOnGet(t *testing.T) {
	c := testContext(t, "GET", "/api/v1/materials/list", `{"session_id":"from-body"}`)
	assert.Empty(t, SessionID(c))
}

func TestSessionIDMalformedBody(t *testing.T) {
	c := testContext(t, "POST", "/api/v1/materials/add", "not-json")
	assert.Empty(t, SessionID(c))
}
