package httpapi

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
	"github.com/lumar-safety/orient/internal/core/services"
)

// reportRequest is the report-generation payload. Coordinates are optional:
// without them the server-side position source is asked for a fix.
type reportRequest struct {
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	AccuracyMeters float64  `json:"accuracy_meters"`
	ManualAddress  string   `json:"manual_address"`
	Language       string   `json:"language"`
}

// errorResponse is the uniform error payload. For position failures Kind
// carries the classification and Message the localized retry text.
type errorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

func (s *Server) generateReport(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	lang, err := domain.ParseLanguage(req.Language)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unsupported language: " + req.Language})
	}

	params := driving.ReportParams{
		ManualAddress: req.ManualAddress,
		Language:      lang,
	}
	if req.Latitude != nil && req.Longitude != nil {
		params.Coordinate = &domain.Coordinate{
			Latitude:       *req.Latitude,
			Longitude:      *req.Longitude,
			AccuracyMeters: req.AccuracyMeters,
		}
	}

	report, err := s.deps.Reports.Generate(c.Request().Context(), params)
	if err != nil {
		return s.mapReportError(c, err, lang)
	}
	return c.JSON(http.StatusOK, report)
}

// mapReportError translates pipeline errors into status codes. Position
// failures are client-retryable and carry the localized message.
func (s *Server) mapReportError(c echo.Context, err error, lang domain.Language) error {
	var geoErr *domain.GeoError
	if errors.As(err, &geoErr) {
		status := http.StatusUnprocessableEntity
		if geoErr.Kind == domain.GeoPermissionDenied {
			status = http.StatusForbidden
		}
		return c.JSON(status, errorResponse{
			Error:   "position fix failed",
			Kind:    string(geoErr.Kind),
			Message: services.GeoErrorMessage(lang, geoErr.Kind),
		})
	}
	if errors.Is(err, domain.ErrUnsupportedLanguage) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unsupported language"})
	}
	s.deps.Logger.Error().Err(err).Msg("report generation failed")
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "report generation failed"})
}

type extractRequest struct {
	Text string `json:"text"`
}

func (s *Server) extractAddress(c echo.Context) error {
	var req extractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	// Extraction never fails; degraded results come back as low confidence.
	result := s.deps.Extractor.Extract(c.Request().Context(), req.Text)
	return c.JSON(http.StatusOK, result)
}

type createSessionRequest struct {
	Language string `json:"language"`
}

type sessionResponse struct {
	ID       string               `json:"id"`
	Language domain.Language      `json:"language"`
	Messages []domain.ChatMessage `json:"messages"`
}

func (s *Server) createSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	lang, err := domain.ParseLanguage(req.Language)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unsupported language: " + req.Language})
	}

	sess, err := s.deps.Chat.NewSession(lang)
	if err != nil {
		if errors.Is(err, domain.ErrModelUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "chat model unavailable"})
		}
		s.deps.Logger.Error().Err(err).Msg("session creation failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "session creation failed"})
	}

	return c.JSON(http.StatusCreated, sessionResponse{
		ID:       sess.ID(),
		Language: sess.Language(),
		Messages: sess.History(),
	})
}

func (s *Server) sessionHistory(c echo.Context) error {
	sess, ok := s.deps.Chat.Session(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		ID:       sess.ID(),
		Language: sess.Language(),
		Messages: sess.History(),
	})
}

type messageRequest struct {
	Text string `json:"text"`

	// ImageData is the base64-encoded photo, with its MIME type.
	ImageData     string `json:"image_data,omitempty"`
	ImageMIMEType string `json:"image_mime_type,omitempty"`
}

func (s *Server) sendMessage(c echo.Context) error {
	sess, ok := s.deps.Chat.Session(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
	}

	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	var image *domain.ImageAttachment
	if req.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageData)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid image encoding"})
		}
		mime := req.ImageMIMEType
		if mime == "" {
			mime = "image/jpeg"
		}
		image = &domain.ImageAttachment{Data: data, MIMEType: mime}
	}

	msg, err := sess.Send(c.Request().Context(), req.Text, image)
	switch {
	case errors.Is(err, domain.ErrEmptyTurn):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "message requires text or image"})
	case errors.Is(err, domain.ErrSessionBusy):
		return c.JSON(http.StatusConflict, errorResponse{Error: "a turn is already in flight"})
	case errors.Is(err, domain.ErrSessionClosed):
		return c.JSON(http.StatusGone, errorResponse{Error: "session closed"})
	case err != nil:
		s.deps.Logger.Error().Err(err).Msg("chat turn failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "chat turn failed"})
	}
	return c.JSON(http.StatusOK, msg)
}

func (s *Server) closeSession(c echo.Context) error {
	sess, ok := s.deps.Chat.Session(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
	}
	if err := sess.Close(); err != nil {
		s.deps.Logger.Error().Err(err).Msg("session close failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "session close failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
