package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroboardhq/retroboard/pkg/config"
	"github.com/retroboardhq/retroboard/pkg/identity"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := securityHeaders()(func(c *echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	h := rec.Header()
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
	assert.NotEmpty(t, h.Get("Permissions-Policy"))
}

func TestIdentityMiddleware(t *testing.T) {
	s := &Server{identities: identity.NewProvider(identity.SHA256Hasher{})}
	e := echo.New()

	t.Run("mints a cookie and stashes the hash", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var gotHash string
		handler := s.identityMiddleware()(func(c *echo.Context) error {
			gotHash = identityHash(c)
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		assert.Len(t, gotHash, 64)
		require.Len(t, rec.Result().Cookies(), 1)
		assert.Equal(t, identity.CookieName, rec.Result().Cookies()[0].Name)
	})

	t.Run("reuses an existing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: identity.CookieName, Value: "stable-cookie"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var gotHash string
		handler := s.identityMiddleware()(func(c *echo.Context) error {
			gotHash = identityHash(c)
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		assert.Equal(t, identity.SHA256Hasher{}.Hash("stable-cookie"), gotHash)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestIdentityHash_WithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, identityHash(c))
}

func TestAdminSecretMiddleware(t *testing.T) {
	s := &Server{cfg: &config.Config{AdminSecret: "super-secret"}}
	e := echo.New()

	next := func(c *echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("correct secret passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(adminSecretHeader, "super-secret")
		c := e.NewContext(req, httptest.NewRecorder())

		require.NoError(t, s.adminSecretMiddleware()(next)(c))
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(adminSecretHeader, "guess")
		c := e.NewContext(req, httptest.NewRecorder())

		err := s.adminSecretMiddleware()(next)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		err := s.adminSecretMiddleware()(next)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
