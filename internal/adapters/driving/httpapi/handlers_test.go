package httpapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
)

// fakeReports is a scriptable driving.ReportGenerator.
type fakeReports struct {
	report *domain.OrientationReport
	err    error
	params driving.ReportParams
}

func (f *fakeReports) Generate(_ context.Context, params driving.ReportParams) (*domain.OrientationReport, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

// fakeExtractor is a scriptable driving.AddressExtractor.
type fakeExtractor struct {
	result domain.ExtractedAddress
	text   string
}

func (f *fakeExtractor) Extract(_ context.Context, text string) domain.ExtractedAddress {
	f.text = text
	return f.result
}

// fakeSession is a scriptable driving.FirstAidSession.
type fakeSession struct {
	id      string
	lang    domain.Language
	reply   domain.ChatMessage
	sendErr error
	history []domain.ChatMessage
	closed  bool

	gotText  string
	gotImage *domain.ImageAttachment
}

func (f *fakeSession) ID() string                { return f.id }
func (f *fakeSession) Language() domain.Language { return f.lang }

func (f *fakeSession) Send(_ context.Context, text string, image *domain.ImageAttachment) (domain.ChatMessage, error) {
	f.gotText = text
	f.gotImage = image
	if f.sendErr != nil {
		return domain.ChatMessage{}, f.sendErr
	}
	return f.reply, nil
}

func (f *fakeSession) History() []domain.ChatMessage { return f.history }

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

// fakeChat is a scriptable driving.FirstAidChat with one live session.
type fakeChat struct {
	session *fakeSession
	newErr  error
}

func (f *fakeChat) NewSession(lang domain.Language) (driving.FirstAidSession, error) {
	if f.newErr != nil {
		return nil, f.newErr
	}
	f.session.lang = lang
	return f.session, nil
}

func (f *fakeChat) Session(id string) (driving.FirstAidSession, bool) {
	if f.session != nil && f.session.id == id {
		return f.session, true
	}
	return nil, false
}

func newTestServer(reports *fakeReports, extractor *fakeExtractor, chat *fakeChat) *Server {
	if reports == nil {
		reports = &fakeReports{}
	}
	if extractor == nil {
		extractor = &fakeExtractor{}
	}
	if chat == nil {
		chat = &fakeChat{}
	}
	return NewServer(Deps{
		Reports:   reports,
		Extractor: extractor,
		Chat:      chat,
		Logger:    zerolog.Nop(),
	})
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil, nil), http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestGenerateReport(t *testing.T) {
	reports := &fakeReports{report: &domain.OrientationReport{
		Coordinate: domain.Coordinate{Latitude: 48.2082, Longitude: 16.3738},
		Context: domain.LocationContext{
			Address:     "Stephansplatz 1, 1010 Wien",
			Description: "Stadtzentrum",
		},
		Language: domain.LanguageGerman,
	}}
	s := newTestServer(reports, nil, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/reports",
		`{"latitude": 48.2082, "longitude": 16.3738, "accuracy_meters": 12, "language": "de"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, reports.params.Coordinate)
	assert.InDelta(t, 48.2082, reports.params.Coordinate.Latitude, 1e-9)
	assert.InDelta(t, 12.0, reports.params.Coordinate.AccuracyMeters, 1e-9)
	assert.Equal(t, domain.LanguageGerman, reports.params.Language)

	var got domain.OrientationReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Stephansplatz 1, 1010 Wien", got.Context.Address)
}

func TestGenerateReport_NoCoordinatesTriggersLocate(t *testing.T) {
	reports := &fakeReports{report: &domain.OrientationReport{}}
	s := newTestServer(reports, nil, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/reports", `{"language": "en"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, reports.params.Coordinate)
}

func TestGenerateReport_UnsupportedLanguage(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil, nil), http.MethodPost, "/api/v1/reports", `{"language": "fr"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateReport_GeoError(t *testing.T) {
	reports := &fakeReports{err: domain.NewGeoError(domain.GeoTimeout, nil)}
	s := newTestServer(reports, nil, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/reports", `{"language": "de"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "timeout", resp.Kind)
	assert.Contains(t, resp.Message, "Zeitüberschreitung")
}

func TestGenerateReport_PermissionDenied(t *testing.T) {
	reports := &fakeReports{err: domain.NewGeoError(domain.GeoPermissionDenied, nil)}
	s := newTestServer(reports, nil, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/reports", `{"language": "en"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExtractAddress(t *testing.T) {
	extractor := &fakeExtractor{result: domain.ExtractedAddress{
		Street:      "Hauptstraße",
		HouseNumber: "12",
		PostalCode:  "1010",
		City:        "Wien",
		Confidence:  domain.ConfidenceHigh,
	}}
	s := newTestServer(nil, extractor, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/address/extract",
		`{"text": "Treffen bei Hauptstraße 12, 1010 Wien"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Treffen bei Hauptstraße 12, 1010 Wien", extractor.text)

	var got domain.ExtractedAddress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.ConfidenceHigh, got.Confidence)
	assert.Equal(t, "Hauptstraße 12, 1010 Wien", got.DisplayAddress())
}

func TestExtractAddress_DegradedIsStill200(t *testing.T) {
	extractor := &fakeExtractor{result: domain.EmptyExtraction("Extraktion fehlgeschlagen")}
	s := newTestServer(nil, extractor, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/address/extract", `{"text": "gibberish"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.ExtractedAddress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.ConfidenceLow, got.Confidence)
	assert.False(t, got.HasAddress())
}

func TestCreateSession(t *testing.T) {
	chat := &fakeChat{session: &fakeSession{
		id: "sess-1",
		history: []domain.ChatMessage{
			{ID: "m1", Role: domain.ChatRoleModel, Text: "greeting"},
		},
	}}
	s := newTestServer(nil, nil, chat)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat/sessions", `{"language": "hr"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, domain.LanguageCroatian, got.Language)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "greeting", got.Messages[0].Text)
}

func TestCreateSession_ModelUnavailable(t *testing.T) {
	chat := &fakeChat{newErr: domain.ErrModelUnavailable}
	s := newTestServer(nil, nil, chat)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat/sessions", `{"language": "de"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSessionHistory_NotFound(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil, nil), http.MethodGet, "/api/v1/chat/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessage(t *testing.T) {
	session := &fakeSession{
		id:    "sess-1",
		reply: domain.ChatMessage{ID: "m2", Role: domain.ChatRoleModel, Text: "Druckverband anlegen."},
	}
	s := newTestServer(nil, nil, &fakeChat{session: session})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat/sessions/sess-1/messages",
		`{"text": "Starke Blutung"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Starke Blutung", session.gotText)
	assert.Nil(t, session.gotImage)

	var got domain.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Druckverband anlegen.", got.Text)
}

func TestSendMessage_WithImage(t *testing.T) {
	session := &fakeSession{id: "sess-1", reply: domain.ChatMessage{Text: "ok"}}
	s := newTestServer(nil, nil, &fakeChat{session: session})

	imgData := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8})
	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat/sessions/sess-1/messages",
		`{"image_data": "`+imgData+`", "image_mime_type": "image/png"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, session.gotImage)
	assert.Equal(t, []byte{0xff, 0xd8}, session.gotImage.Data)
	assert.Equal(t, "image/png", session.gotImage.MIMEType)
}

func TestSendMessage_BadImageEncoding(t *testing.T) {
	session := &fakeSession{id: "sess-1"}
	s := newTestServer(nil, nil, &fakeChat{session: session})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat/sessions/sess-1/messages",
		`{"image_data": "not-base64!!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty turn", domain.ErrEmptyTurn, http.StatusBadRequest},
		{"busy", domain.ErrSessionBusy, http.StatusConflict},
		{"closed", domain.ErrSessionClosed, http.StatusGone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &fakeSession{id: "sess-1", sendErr: tt.err}
			s := newTestServer(nil, nil, &fakeChat{session: session})

			rec := doJSON(t, s, http.MethodPost, "/api/v1/chat/sessions/sess-1/messages",
				`{"text": "x"}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCloseSession(t *testing.T) {
	session := &fakeSession{id: "sess-1"}
	s := newTestServer(nil, nil, &fakeChat{session: session})

	rec := doJSON(t, s, http.MethodDelete, "/api/v1/chat/sessions/sess-1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, session.closed)
}

func TestCloseSession_NotFound(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil, nil), http.MethodDelete, "/api/v1/chat/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
