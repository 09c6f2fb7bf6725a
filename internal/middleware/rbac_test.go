package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/response"
	"github.com/Azad-roy/Online-Exam-System/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runGuard(t *testing.T, claims *service.Claims, roles ...model.Role) (*httptest.ResponseRecorder, *response.Response) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if claims != nil {
		c.Set(ContextKeyClaims, claims)
	}

	RequireRole(roles...)(c)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, &body
}

func TestRequireRoleNoSessionRedirectsToAuth(t *testing.T) {
	w, body := runGuard(t, nil, model.RoleStudent)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, AuthEntryRoute, body.Error.RedirectTo)
}

func TestRequireRoleWrongRoleRedirectsHome(t *testing.T) {
	claims := &service.Claims{UserID: 1, Role: model.RoleTeacher}
	w, body := runGuard(t, claims, model.RoleStudent)

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "/teacher-panel", body.Error.RedirectTo)
}

func TestRequireRoleAdminRedirectsToAdminHome(t *testing.T) {
	claims := &service.Claims{UserID: 1, Role: model.RoleAdmin}
	w, body := runGuard(t, claims, model.RoleStudent)

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "/admin", body.Error.RedirectTo)
}

func TestRequireRoleMatchPasses(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	c.Set(ContextKeyClaims, &service.Claims{UserID: 1, Role: model.RoleStudent})

	RequireRole(model.RoleStudent)(c)

	assert.False(t, c.IsAborted())
}

func TestRequireRoleAcceptsAnyListedRole(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	c.Set(ContextKeyClaims, &service.Claims{UserID: 1, Role: model.RoleAdmin})

	RequireRole(model.RoleTeacher, model.RoleAdmin)(c)

	assert.False(t, c.IsAborted())
}
