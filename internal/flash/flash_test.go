package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenTake(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// First response carries the cookie.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Set(c, "Job posted successfully", "success")

	res := w.Result()
	var cookie *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == "flash" {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	// Next request presents it and Take drains it.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(cookie)

	msg := Take(c2)
	require.NotNil(t, msg)
	assert.Equal(t, "Job posted successfully", msg.Message)
	assert.Equal(t, "success", msg.Level)

	// Take clears the cookie on the response.
	cleared := false
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == "flash" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestTakeWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, Take(c))
}

func TestDecodeInvalidValues(t *testing.T) {
	assert.Nil(t, Decode("not base64 !!!"))
	assert.Nil(t, Decode("bm90IGpzb24"))
}
