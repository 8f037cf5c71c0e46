package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/filaliempire/crm-server/internal/config"
	"github.com/filaliempire/crm-server/models"
)

type httpCalendarAdapter struct {
	client *resty.Client
}

// NewHTTPCalendarAdapter constructs a [CalendarAdapter] talking to the
// calendar API at cfg.BaseURL.
func NewHTTPCalendarAdapter(cfg config.Endpoint) CalendarAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpCalendarAdapter{client: cli}
}

func (c *httpCalendarAdapter) GetEvents(ctx context.Context, query models.EventQuery) ([]models.CalendarEvent, error) {
	params := url.Values{}
	if query.Start != "" {
		params.Set("start", query.Start)
	}
	if query.End != "" {
		params.Set("end", query.End)
	}
	if query.CalendarID != "" {
		params.Set("calendarId", query.CalendarID)
	}
	if query.TimeZone != "" {
		params.Set("tz", query.TimeZone)
	}
	if query.Top > 0 {
		params.Set("top", strconv.Itoa(query.Top))
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("events request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.EventsEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode events response: %w", err)
	}

	return envelope.Value, nil
}
