package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSuccessThenTake(t *testing.T) {
	// Queue the notice on one request.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	Success(c, "Enrolled in \"Go Basics\".")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "mc_flash", cookies[0].Name)

	// Consume it on the next.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(cookies[0])

	n := Take(c2)
	require.NotNil(t, n)
	assert.Equal(t, KindSuccess, n.Kind)
	assert.Equal(t, "Enrolled in \"Go Basics\".", n.Message)

	// Take clears the cookie so the notice shows once.
	var cleared *http.Cookie
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == "mc_flash" {
			cleared = ck
		}
	}
	require.NotNil(t, cleared)
	assert.True(t, cleared.MaxAge < 0)
}

func TestTakeWithoutNotice(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, Take(c))
}

func TestTakeGarbageCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "mc_flash", Value: "%%%not-base64"})

	assert.Nil(t, Take(c))
}

func TestErrorKind(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	Error(c, "Login failed.")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(cookies[0])

	n := Take(c2)
	require.NotNil(t, n)
	assert.Equal(t, KindError, n.Kind)
}

func TestConfigureSecureAppliesToCookie(t *testing.T) {
	Configure(true)
	t.Cleanup(func() { Configure(false) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	Success(c, "ok")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].Secure)

	// The clearing write carries the same attribute.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(cookies[0])
	require.NotNil(t, Take(c2))

	var cleared *http.Cookie
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == "mc_flash" {
			cleared = ck
		}
	}
	require.NotNil(t, cleared)
	assert.True(t, cleared.Secure)
}

func TestMessageCatalog(t *testing.T) {
	assert.NotEmpty(t, Message(CodeLoginFailed))
	assert.NotEmpty(t, Message(CodeEnrolled))
	assert.NotEmpty(t, Message(CodeSessionEnded))
	// Unknown codes still produce something usable.
	assert.NotEmpty(t, Message(Code("no-such-code")))
}
