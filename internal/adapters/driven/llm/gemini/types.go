package gemini

import (
	"strings"

	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// generateRequest is the Gemini :generateContent request format.
type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
	ToolConfig        *toolConfig       `json:"toolConfig,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

// content is one conversation entry: a role plus its parts.
type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// part is one content fragment: text or inline binary data.
type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

// inlineData carries base64-encoded media.
type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// tool declares a grounding tool. Only Google Maps grounding is used here.
type tool struct {
	GoogleMaps *struct{} `json:"googleMaps,omitempty"`
}

// toolConfig tunes the declared tools.
type toolConfig struct {
	RetrievalConfig *retrievalConfig `json:"retrievalConfig,omitempty"`
}

// retrievalConfig anchors grounding retrieval to a position.
type retrievalConfig struct {
	LatLng *latLng `json:"latLng,omitempty"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// generationConfig selects the structured-output mode.
type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

// schema is the Gemini response-schema format. It mirrors the port schema
// but uses the API's upper-case type names.
type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Nullable    bool               `json:"nullable,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *schema            `json:"items,omitempty"`
}

// toSchema converts a port schema into the wire format.
func toSchema(s *driven.Schema) *schema {
	if s == nil {
		return nil
	}
	out := &schema{
		Type:        strings.ToUpper(s.Type),
		Description: s.Description,
		Nullable:    s.Nullable,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       toSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
	}
	return out
}

// generateResponse is the Gemini :generateContent response format.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

// candidate is one model answer with optional grounding citations.
type candidate struct {
	Content           content            `json:"content"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

// groundingMetadata carries the citations backing a grounded answer.
type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks,omitempty"`
}

// groundingChunk is one citation source. Maps grounding exposes a place
// deep link.
type groundingChunk struct {
	Maps *mapsChunk `json:"maps,omitempty"`
}

type mapsChunk struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// apiError is the Gemini error envelope.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// text joins the text parts of a candidate's content.
func (c *candidate) text() string {
	var b strings.Builder
	for _, p := range c.Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// mapURL returns the first maps citation URI, if any.
func (c *candidate) mapURL() string {
	if c.GroundingMetadata == nil {
		return ""
	}
	for _, chunk := range c.GroundingMetadata.GroundingChunks {
		if chunk.Maps != nil && chunk.Maps.URI != "" {
			return chunk.Maps.URI
		}
	}
	return ""
}
