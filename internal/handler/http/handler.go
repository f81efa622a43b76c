package http

import (
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/utils"
)

type Handler struct {
	services *service.Services

	// traceIDs generates ids for requests that arrive without X-Trace-ID.
	traceIDs *utils.UUIDGenerator

	// requestTimeout bounds each request when positive.
	requestTimeout time.Duration

	// maxUploadSize caps the body of PUT /upload.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = config.DefaultMaxUploadSize
	}

	return &Handler{
		services:       services,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}
