package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to the Car Management API"

// Root answers the service banner.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, welcomeMessage)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
