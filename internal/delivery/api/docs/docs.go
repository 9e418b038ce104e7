// Package docs serves the embedded OpenAPI document for the HTTP API.
package docs

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"

	"carhub/config"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed openapi.yaml
var specYAML []byte

// Load parses and validates the embedded document. A non-empty serverURL replaces the servers list.
func Load(ctx context.Context, serverURL string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(specYAML)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load OpenAPI document")
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, errors.Wrap(err, "invalid OpenAPI document")
	}

	if serverURL != "" {
		doc.Servers = openapi3.Servers{{URL: serverURL}}
	}

	return doc, nil
}

// Handler serves the OpenAPI document as JSON.
type Handler struct {
	document []byte
}

// NewHandler loads the document once at startup.
func NewHandler(cfg *config.Config) (*Handler, error) {
	serverURL := ""
	if cfg != nil && cfg.Docs != nil {
		serverURL = cfg.Docs.ServerURL
	}

	doc, err := Load(context.Background(), serverURL)
	if err != nil {
		return nil, err
	}

	document, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode OpenAPI document")
	}

	return &Handler{document: document}, nil
}

// Serve writes the OpenAPI document.
func (h *Handler) Serve(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, h.document)
}
