package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCacheControlSetsPrivateMaxAge(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/quizzes", nil)

	CacheControl(30)(c)

	assert.Equal(t, "private, max-age=30", w.Header().Get("Cache-Control"))
	assert.False(t, c.IsAborted())
}
