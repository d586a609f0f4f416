package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jyotidabass/fitscore-calculator/internal/fitscore"
	"github.com/jyotidabass/fitscore-calculator/internal/weights"
	"github.com/jyotidabass/fitscore-calculator/pkg/logger"
)

type FitScoreHandler struct {
	calculator *fitscore.Calculator
}

func NewFitScoreHandler(calculator *fitscore.Calculator) *FitScoreHandler {
	return &FitScoreHandler{
		calculator: calculator,
	}
}

// HandleCalculate runs one evaluation for the posted resume and job
// description.
func (h *FitScoreHandler) HandleCalculate(c *fiber.Ctx) error {
	var req struct {
		ResumeText     string          `json:"resume_text"`
		JobDescription string          `json:"job_description"`
		Collateral     string          `json:"collateral"`
		CompanyWeights *weights.Vector `json:"company_weights"`
		UseInsight     bool            `json:"use_insight"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ResumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text is required",
		})
	}
	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	result := h.calculator.Evaluate(c.Context(), fitscore.Request{
		Resume:         req.ResumeText,
		JobDescription: req.JobDescription,
		Collateral:     req.Collateral,
		CustomWeights:  req.CompanyWeights,
		UseInsight:     req.UseInsight,
	})

	return c.JSON(result)
}

// HandleWeights returns the default weight vector so callers can see the
// baseline before customizing.
func (h *FitScoreHandler) HandleWeights(c *fiber.Ctx) error {
	return c.JSON(weights.Default())
}
