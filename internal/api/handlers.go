// Package api contains the HTTP handlers for the WriteWise service.
package api

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/writewise/writewise/internal/analysis"
	"github.com/writewise/writewise/internal/grammar"
	"github.com/writewise/writewise/pkg/extractor"
	"github.com/writewise/writewise/pkg/logging"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	analyzer *analysis.Analyzer
	extract  *extractor.Engine
	log      zerolog.Logger
}

// NewHandlers creates a new handlers instance around the analyzer.
func NewHandlers(analyzer *analysis.Analyzer) *Handlers {
	return &Handlers{
		analyzer: analyzer,
		extract:  extractor.NewEngine(),
		log:      logging.GetLogger("api"),
	}
}

// SetupRoutes registers all API routes on the app.
func SetupRoutes(app *fiber.App, h *Handlers) {
	app.Get("/", h.Health)
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Post("/check", h.Check)
	api.Post("/check/file", h.CheckFile)
}

// Health returns the service health status.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "writewise",
		"version": Version,
	})
}

// CheckRequest is the body of POST /api/check.
type CheckRequest struct {
	Text        string `json:"text"`
	AutoCorrect bool   `json:"auto_correct"`
}

// CheckResponse is the analysis report returned to the client.
type CheckResponse struct {
	analysis.Result
	CorrectedText *string `json:"corrected_text"`
}

// Check analyzes the text in the request body and returns the full
// report, optionally with an auto-corrected rewrite.
func (h *Handlers) Check(c *fiber.Ctx) error {
	var req CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Text cannot be empty",
		})
	}

	return h.respond(c, req.Text, req.AutoCorrect)
}

// CheckFile accepts a multipart document upload (txt, md, html, pdf,
// docx), extracts its text, and analyzes it like Check does.
func (h *Handlers) CheckFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing file upload",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Unreadable file upload",
			"details": err.Error(),
		})
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Unreadable file upload",
			"details": err.Error(),
		})
	}

	format := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	text, err := h.extract.Extract(c.Context(), content, format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Could not extract text from file",
			"details": err.Error(),
		})
	}

	if strings.TrimSpace(text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Text cannot be empty",
		})
	}

	autoCorrect := c.FormValue("auto_correct") == "true"
	return h.respond(c, text, autoCorrect)
}

// respond runs the analysis and writes the response, translating
// capability failures into a server error.
func (h *Handlers) respond(c *fiber.Ctx, text string, autoCorrect bool) error {
	requestID := uuid.New().String()
	log := h.log.With().Str("request_id", requestID).Logger()

	result, err := h.analyzer.Analyze(c.Context(), text)
	if err != nil {
		if errors.Is(err, grammar.ErrUnavailable) {
			log.Error().Err(err).Msg("Grammar service unavailable")
		} else {
			log.Error().Err(err).Msg("Analysis failed")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing text",
		})
	}

	resp := CheckResponse{Result: *result}
	if autoCorrect {
		corrected, err := h.analyzer.CorrectText(c.Context(), text)
		if err != nil {
			log.Error().Err(err).Msg("Correction failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error processing text",
			})
		}
		resp.CorrectedText = &corrected
	}

	log.Info().
		Int("word_count", result.WordCount).
		Float64("score", result.Score).
		Bool("auto_correct", autoCorrect).
		Msg("Text analyzed")

	return c.JSON(resp)
}
