package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/repository"
)

// parsePage reads and clamps page/limit query parameters.
func parsePage(c *fiber.Ctx) repository.Page {
	page := parseInt(c.Query("page"), 1)
	limit := parseInt(c.Query("limit"), repository.DefaultLimit)
	return repository.ClampPage(page, limit)
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}

func parseDate(val string) (time.Time, bool) {
	if val == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func optionalString(c *fiber.Ctx, key string) *string {
	val := strings.TrimSpace(c.Query(key))
	if val == "" {
		return nil
	}
	return &val
}

func splitCSV(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
