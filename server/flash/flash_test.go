package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carryCookies copies the cookies set on 'rec' onto a new request, like a browser would
func carryCookies(rec *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			r.AddCookie(cookie)
		}
	}
	return r
}

func TestAddAndPop(t *testing.T) {
	store := NewStore("secret")

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/signup", nil)
	require.Nil(t, store.Add(rec, r, Success("Signup successful, please login.")))

	next := carryCookies(rec)
	rec = httptest.NewRecorder()
	messages := store.Pop(rec, next)

	assert.Equal(t, []Message{{Kind: SUCCESS, Text: "Signup successful, please login."}}, messages)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, COOKIE_NAME, cleared[0].Name)
	assert.True(t, cleared[0].MaxAge < 0, "Pop should expire the flash cookie")
}

func TestAddKeepsPendingMessages(t *testing.T) {
	store := NewStore("secret")

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	require.Nil(t, store.Add(rec, r, Info("first")))
	require.Nil(t, store.Add(rec, r, Error("second")))

	messages := store.Pop(httptest.NewRecorder(), r)
	assert.Equal(t, []Message{Info("first"), Error("second")}, messages)
}

func TestTamperedCookieIsIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	require.Nil(t, NewStore("secret").Add(rec, r, Info("hello")))

	next := carryCookies(rec)
	messages := NewStore("another-secret").Pop(httptest.NewRecorder(), next)
	assert.Empty(t, messages)
}

func TestExpiredCookieIsIgnored(t *testing.T) {
	store := NewStore("secret")
	store.now = func() time.Time { return time.Now().Add(-2 * MAX_AGE) }

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	require.Nil(t, store.Add(rec, r, Info("stale")))

	store.now = time.Now
	assert.Empty(t, store.Pop(httptest.NewRecorder(), carryCookies(rec)))
}
