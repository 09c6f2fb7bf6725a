package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Setup()
}

func bindJSON(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestBindReportsAllViolationsAtOnce(t *testing.T) {
	var req model.SignupRequest
	fields := bindJSON(t, `{"name":"A","email":"not-an-email","password":"123"}`, &req)

	require.NotNil(t, fields)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestBindUsesJSONFieldNames(t *testing.T) {
	var req model.LoginRequest
	fields := bindJSON(t, `{"email":"ada@example.com"}`, &req)

	require.NotNil(t, fields)
	assert.Contains(t, fields, "password")
	assert.NotContains(t, fields, "Password")
}

func TestBindValidPayload(t *testing.T) {
	var req model.LoginRequest
	fields := bindJSON(t, `{"email":"ada@example.com","password":"hunter22"}`, &req)

	assert.Nil(t, fields)
	assert.Equal(t, "ada@example.com", req.Email)
}

func TestBindMalformedJSON(t *testing.T) {
	var req model.LoginRequest
	fields := bindJSON(t, `{"email":`, &req)

	require.NotNil(t, fields)
	assert.Contains(t, fields, "detail")
}
