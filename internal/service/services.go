package service

import (
	"github.com/filaliempire/crm-server/internal/adapter"
	"github.com/filaliempire/crm-server/internal/config"
	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/store"
	"github.com/filaliempire/crm-server/internal/utils"
)

type Services struct {
	ClientService   ClientService
	DossierService  DossierService
	PaymentsService PaymentsService
	CalendarService CalendarService
	EmailService    EmailService
}

// Adapters groups the outbound collaborator clients the services depend on.
type Adapters struct {
	Payments   adapter.PaymentsAdapter
	Calendar   adapter.CalendarAdapter
	Dispatcher adapter.DispatcherAdapter
}

// NewAdapters wires the collaborator clients from configuration.
func NewAdapters(cfg config.Collaborators) Adapters {
	return Adapters{
		Payments:   adapter.NewHTTPPaymentsAdapter(cfg.Payments),
		Calendar:   adapter.NewHTTPCalendarAdapter(cfg.Calendar),
		Dispatcher: adapter.NewHTTPDispatcherAdapter(cfg.Dispatcher),
	}
}

func NewServices(storages store.Storages, adapters Adapters, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	clients := NewClientService(storages.ClientRepository, utils.NewUUIDGenerator(), cfg.App, logger)
	payments := NewPaymentsService(adapters.Payments, logger)
	calendar := NewCalendarService(adapters.Calendar, adapters.Dispatcher, logger)

	return &Services{
		ClientService:   clients,
		DossierService:  NewDossierService(storages.ClientRepository, payments, calendar, logger),
		PaymentsService: payments,
		CalendarService: calendar,
		EmailService:    NewEmailService(clients, adapters.Dispatcher, logger),
	}
}
