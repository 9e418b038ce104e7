package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"carhub/internal/delivery/api/middleware"
	"carhub/internal/delivery/api/validator"
	deliverycontext "carhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// serve runs h against a request, resolving returned errors the way the server does.
func serve(e *echo.Echo, h echo.HandlerFunc, method, target, body string, userID uuid.UUID, params map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != uuid.Nil {
		c.SetRequest(req.WithContext(deliverycontext.WithUserID(req.Context(), userID)))
	}
	for name, value := range params {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
