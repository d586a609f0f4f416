package validation

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Config struct {
	MaxResumeLength         int
	MaxJobDescriptionLength int
	MaxCollateralLength     int
	AllowedContentTypes     []string
	Logger                  *zap.Logger
}

// Middleware enforces content type and payload limits on the evaluation
// endpoint. Resume and job description text is free-form, so no content
// filtering is applied beyond length and null-byte sanitation.
func Middleware(cfg Config) fiber.Handler {
	if cfg.MaxResumeLength == 0 {
		cfg.MaxResumeLength = 100000
	}
	if cfg.MaxJobDescriptionLength == 0 {
		cfg.MaxJobDescriptionLength = 50000
	}
	if cfg.MaxCollateralLength == 0 {
		cfg.MaxCollateralLength = 20000
	}
	if len(cfg.AllowedContentTypes) == 0 {
		cfg.AllowedContentTypes = []string{"application/json"}
	}

	return func(c *fiber.Ctx) error {
		if c.Method() == "POST" || c.Method() == "PUT" {
			contentType := c.Get("Content-Type")
			if contentType != "" {
				allowed := false
				for _, allowedType := range cfg.AllowedContentTypes {
					if strings.Contains(contentType, allowedType) {
						allowed = true
						break
					}
				}
				if !allowed {
					return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
						"error": "Unsupported content type",
					})
				}
			}
		}

		if strings.Contains(c.Path(), "/api/v1/fitscore") && c.Method() == "POST" {
			var req map[string]interface{}
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid JSON format",
				})
			}

			resume, ok := req["resume_text"].(string)
			if !ok || resume == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "resume_text is required and must be a string",
				})
			}
			if len(resume) > cfg.MaxResumeLength {
				cfg.Logger.Warn("Resume exceeds maximum length",
					zap.String("ip", c.IP()),
					zap.Int("length", len(resume)),
				)
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
					"error": "resume_text exceeds maximum length",
				})
			}

			jd, ok := req["job_description"].(string)
			if !ok || jd == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "job_description is required and must be a string",
				})
			}
			if len(jd) > cfg.MaxJobDescriptionLength {
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
					"error": "job_description exceeds maximum length",
				})
			}

			if collateral, ok := req["collateral"].(string); ok && len(collateral) > cfg.MaxCollateralLength {
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
					"error": "collateral exceeds maximum length",
				})
			}

			req["resume_text"] = sanitizeString(resume)
			req["job_description"] = sanitizeString(jd)
			c.Locals("sanitized_body", req)
		}

		return c.Next()
	}
}

func sanitizeString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}
