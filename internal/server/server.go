// Package server exposes the conversion pipeline over HTTP.
package server

import (
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/convert"
)

// Handler carries the dependencies shared by all routes.
type Handler struct {
	service *convert.Service
	log     *slog.Logger
}

func NewHandler(service *convert.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{service: service, log: log}
}

// New builds the echo instance with middleware and routes registered.
func New(h *Handler, cfg common.ServerConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(strconv.FormatInt(cfg.MaxUploadMB, 10) + "M"))

	api := e.Group("/api/v1")
	api.GET("/health", h.HandleHealth)
	api.GET("/jurisdictions", h.HandleJurisdictions)
	api.POST("/convert", h.HandleConvert)
	api.POST("/preview", h.HandlePreview)

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	return e
}
