package handlers

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimitOffset(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		l, o := parseLimitOffset(c, 20)
		return c.SendString(fmt.Sprintf("%d,%d", l, o))
	})

	tests := map[string]string{
		"/":                    "20,0",
		"/?limit=5&offset=10":  "5,10",
		"/?limit=500":          "20,0",
		"/?limit=abc&offset=x": "20,0",
		"/?offset=-3":          "20,0",
	}
	for target, want := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		got, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, want, string(got), target)
	}
}
