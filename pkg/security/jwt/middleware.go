package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingHeader = errors.New("missing Authorization header")
	errEmptyToken    = errors.New("empty token")
	errInvalidToken  = errors.New("invalid or expired token")
	errInvalidIssuer = errors.New("invalid token issuer")
)

// NewAuthMiddleware rejects requests without a valid Bearer JWT (HS256).
// On success sets user id (subject) into c.Locals("userId").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		claims, err := parseHeader(c.Get("Authorization"), secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		setLocals(c, claims)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware lets anonymous requests through. A valid token
// still populates c.Locals("userId"); a bad one is ignored.
func NewOptionalAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		if claims, err := parseHeader(c.Get("Authorization"), secretBytes, expectedIssuer); err == nil {
			setLocals(c, claims)
		}
		return c.Next()
	}
}

func setLocals(c *fiber.Ctx, claims *Claims) {
	c.Locals("userId", claims.RegisteredClaims.Subject)
	if claims.Email != "" {
		c.Locals("email", claims.Email)
	}
}

func parseHeader(authHeader string, secret []byte, expectedIssuer string) (*Claims, error) {
	if authHeader == "" {
		return nil, errMissingHeader
	}
	// Support both "Bearer <token>" and a bare token.
	tokenStr := strings.TrimSpace(authHeader)
	if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenStr = strings.TrimSpace(parts[1])
	}
	if tokenStr == "" {
		return nil, errEmptyToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errInvalidToken
	}
	if expectedIssuer != "" && claims.RegisteredClaims.Issuer != expectedIssuer {
		return nil, errInvalidIssuer
	}
	return claims, nil
}
