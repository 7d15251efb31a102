package utils

import (
	"github.com/gofiber/fiber/v2"
)

// GetIPAddress returns the client IP, preferring proxy headers.
func GetIPAddress(c *fiber.Ctx) string {
	if ip := c.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return c.IP()
}

// GetUserAgent returns the request's user agent header.
func GetUserAgent(c *fiber.Ctx) string {
	return c.Get("User-Agent")
}
