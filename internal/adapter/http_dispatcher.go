package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/filaliempire/crm-server/internal/config"
	"github.com/filaliempire/crm-server/models"
)

type httpDispatcherAdapter struct {
	client       *resty.Client
	eventURL     string
	massEmailURL string
}

// NewHTTPDispatcherAdapter constructs a [DispatcherAdapter] posting to the
// webhook URLs in cfg. Event creation and mass email go to distinct webhooks
// on the same dispatcher service.
func NewHTTPDispatcherAdapter(cfg config.Dispatcher) DispatcherAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &httpDispatcherAdapter{
		client:       resty.New().SetTimeout(timeout),
		eventURL:     cfg.EventURL,
		massEmailURL: cfg.MassEmailURL,
	}
}

func (d *httpDispatcherAdapter) CreateEvent(ctx context.Context, event models.GraphEvent) (models.CreateEventResponse, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(d.eventURL)
	if err != nil {
		return models.CreateEventResponse{}, fmt.Errorf("create event request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateEventResponse{}, err
	}

	// The dispatcher reports the new event id as either "id" or "eventId"
	// depending on which workflow handled the webhook.
	var result struct {
		ID      string `json:"id"`
		EventID string `json:"eventId"`
	}
	// A body that is not JSON is tolerated: the event was created, only the
	// id is unknown.
	_ = json.Unmarshal(resp.Body(), &result)

	eventID := result.ID
	if eventID == "" {
		eventID = result.EventID
	}

	return models.CreateEventResponse{
		Success: true,
		EventID: eventID,
		Message: "Event created successfully",
	}, nil
}

func (d *httpDispatcherAdapter) SendMassEmail(ctx context.Context, batch models.MassEmailBatch) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(batch).
		Post(d.massEmailURL)
	if err != nil {
		return fmt.Errorf("mass email request: %w", err)
	}

	return mapHTTPError(resp)
}
