// Package handler groups the transport-level handlers of the application.
package handler

import (
	"github.com/filaliempire/crm-server/internal/handler/http"
	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
