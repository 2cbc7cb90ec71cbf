package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_IdentityOf_FirstContact(t *testing.T) {
	p := NewProvider(SHA256Hasher{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	id, err := p.IdentityOf(rec, req)
	require.NoError(t, err)
	assert.True(t, id.Issued)
	assert.Len(t, id.Hash, 64)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, id.RawCookie, c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Positive(t, c.MaxAge)
}

func TestProvider_IdentityOf_ReturningClient(t *testing.T) {
	p := NewProvider(SHA256Hasher{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stable-cookie-value"})

	id, err := p.IdentityOf(rec, req)
	require.NoError(t, err)
	assert.False(t, id.Issued)
	assert.Empty(t, rec.Result().Cookies())

	sum := sha256.Sum256([]byte("stable-cookie-value"))
	assert.Equal(t, hex.EncodeToString(sum[:]), id.Hash)

	// The same cookie always hashes to the same identity.
	again, err := p.IdentityOf(httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.Equal(t, id.Hash, again.Hash)
}

func TestProvider_ExistingIdentityOf(t *testing.T) {
	p := NewProvider(SHA256Hasher{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := p.ExistingIdentityOf(req)
	assert.False(t, ok)

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stable-cookie-value"})
	id, ok := p.ExistingIdentityOf(req)
	require.True(t, ok)
	assert.Len(t, id.Hash, 64)
	assert.False(t, id.Issued)
}

func TestProvider_InsecureCookies(t *testing.T) {
	p := NewProvider(SHA256Hasher{})
	p.Secure = false

	rec := httptest.NewRecorder()
	_, err := p.IdentityOf(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.False(t, cookies[0].Secure)
}
