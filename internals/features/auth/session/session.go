// Package session gates the admin surface. The whole admin state machine is
// a single cookie: login issues it, every admin request verifies it, expiry
// (24h) or logout clears it. A Verifier is pluggable so the static
// shared-token cookie can be swapped for signed per-session tokens without
// touching call sites.
package session

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/soungoolwin/EduBusinessAcademy/internals/configs"
)

const (
	CookieName = "auth_token"
	TTL        = 24 * time.Hour
)

type Verifier interface {
	// Issue sets the session cookie on a successful login.
	Issue(c *fiber.Ctx) error
	// Verify reports whether the request carries a valid session cookie.
	Verify(c *fiber.Ctx) bool
	// Clear expires the session cookie.
	Clear(c *fiber.Ctx)
}

// NewFromEnv picks the verifier: SESSION_MODE=jwt → signed tokens,
// anything else → the static shared token.
func NewFromEnv() Verifier {
	if configs.SessionMode == "jwt" {
		return &JWTVerifier{Secret: []byte(configs.SessionJWTSecret)}
	}
	return &StaticVerifier{
		Token: configs.GetEnv("ADMIN_SESSION_TOKEN", "super_secret_auth_token"),
	}
}

func setCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(TTL),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

/* ===============================
   Static shared-token verifier
=================================*/

type StaticVerifier struct {
	Token string
}

func (v *StaticVerifier) Issue(c *fiber.Ctx) error {
	setCookie(c, v.Token)
	return nil
}

func (v *StaticVerifier) Verify(c *fiber.Ctx) bool {
	got := c.Cookies(CookieName)
	if got == "" || v.Token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(v.Token)) == 1
}

func (v *StaticVerifier) Clear(c *fiber.Ctx) { clearCookie(c) }

/* ===============================
   JWT verifier (HS256, 24h exp)
=================================*/

type JWTVerifier struct {
	Secret []byte
}

func (v *JWTVerifier) Issue(c *fiber.Ctx) error {
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.Secret)
	if err != nil {
		return err
	}
	setCookie(c, token)
	return nil
}

func (v *JWTVerifier) Verify(c *fiber.Ctx) bool {
	raw := c.Cookies(CookieName)
	if raw == "" || len(v.Secret) == 0 {
		return false
	}
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.Secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	return ok && claims.Subject == "admin"
}

func (v *JWTVerifier) Clear(c *fiber.Ctx) { clearCookie(c) }
