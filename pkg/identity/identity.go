// Package identity implements the cookie-hash identity scheme: every client
// carries an opaque random cookie, and the one-way hash of that cookie is the
// sole durable identifier the rest of the system sees. Raw cookie values
// never reach stores, services, or logs.
package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"
)

// CookieName is the identity cookie issued on first contact.
const CookieName = "retro_uid"

// cookieMaxAge keeps returning participants stable across visits.
const cookieMaxAge = 365 * 24 * time.Hour

// Hasher is the one-way hash port: Hash maps a raw cookie value to a
// fixed-size 64-char lowercase hex digest.
type Hasher interface {
	Hash(cookieValue string) string
}

// SHA256Hasher is the production Hasher.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(cookieValue string) string {
	sum := sha256.Sum256([]byte(cookieValue))
	return hex.EncodeToString(sum[:])
}

// Identity is the authenticated caller derived from the request cookie.
type Identity struct {
	Hash      string
	RawCookie string
	// Issued is true when this request minted a fresh cookie (first contact).
	Issued bool
}

// Provider resolves request identities, issuing a cookie on first contact.
type Provider struct {
	hasher Hasher
	// Secure controls the cookie Secure attribute; disabled for local dev.
	Secure bool
}

// NewProvider creates a Provider backed by the given Hasher.
func NewProvider(hasher Hasher) *Provider {
	return &Provider{hasher: hasher, Secure: true}
}

// IdentityOf returns the caller's identity. If the request carries no
// identity cookie a new one is generated, set on the response, and its hash
// returned — so first-contact requests are authenticated like any other.
func (p *Provider) IdentityOf(w http.ResponseWriter, r *http.Request) (Identity, error) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return Identity{Hash: p.hasher.Hash(c.Value), RawCookie: c.Value}, nil
	}

	raw, err := newCookieValue()
	if err != nil {
		return Identity{}, fmt.Errorf("failed to generate identity cookie: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    raw,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return Identity{Hash: p.hasher.Hash(raw), RawCookie: raw, Issued: true}, nil
}

// ExistingIdentityOf resolves the identity from an already-issued cookie
// without minting a new one. Used by the WebSocket upgrade path, which
// refuses unauthenticated connections instead of issuing cookies.
func (p *Provider) ExistingIdentityOf(r *http.Request) (Identity, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Identity{}, false
	}
	return Identity{Hash: p.hasher.Hash(c.Value), RawCookie: c.Value}, true
}

func newCookieValue() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
