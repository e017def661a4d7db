package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"

	"github.com/repasseautors/lead-service/internal/domain"
	"github.com/repasseautors/lead-service/pkg/metrics"
)

const (
	defaultBaseURL = "https://www.googleapis.com/calendar/v3"

	scopeEvents   = "https://www.googleapis.com/auth/calendar.events"
	scopeReadonly = "https://www.googleapis.com/auth/calendar.readonly"

	metricsTarget = "google_calendar"
)

// Client talks to the Google Calendar v3 API on behalf of the integration
// service account. Only the two capabilities this system is allowed to use
// are exposed: the free/busy query and the event insert.
type Client struct {
	calendarID string
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics // optional
}

// NewClient builds an authenticated client. The private key is normalized
// and validated here, so a malformed deployment fails at startup instead of
// on the first customer request.
func NewClient(serviceAccountEmail, privateKey, calendarID string, timeout time.Duration, log Logger) (*Client, error) {
	key, err := NormalizePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	conf := &jwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(key),
		Scopes:     []string{scopeReadonly, scopeEvents},
		TokenURL:   google.JWTTokenURL,
	}

	httpClient := conf.Client(context.Background())
	httpClient.Timeout = timeout

	return &Client{
		calendarID: calendarID,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
		log:        log,
	}, nil
}

// WithMetrics enables outbound request metrics and returns the client
func (c *Client) WithMetrics(m *metrics.Metrics) *Client {
	c.metrics = m
	return c
}

// CalendarID returns the identifier of the shared calendar
func (c *Client) CalendarID() string {
	return c.calendarID
}

// FreeBusy queries the busy intervals of the shared calendar over
// [timeMin, timeMax). Read-only.
func (c *Client) FreeBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error) {
	reqBody := freeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   []freeBusyItem{{ID: c.calendarID}},
	}

	var resp freeBusyResponse
	if err := c.post(ctx, "freebusy", c.baseURL+"/freeBusy", reqBody, &resp); err != nil {
		return nil, err
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, fmt.Errorf("%w: calendar %s missing from freebusy response", ErrInvalidResponse, c.calendarID)
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("%w: freebusy reported %s/%s", ErrInvalidResponse, cal.Errors[0].Domain, cal.Errors[0].Reason)
	}

	busy := make([]domain.BusyInterval, 0, len(cal.Busy))
	for _, p := range cal.Busy {
		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: busy interval start %q: %v", ErrInvalidResponse, p.Start, err)
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("%w: busy interval end %q: %v", ErrInvalidResponse, p.End, err)
		}
		busy = append(busy, domain.BusyInterval{Start: start, End: end})
	}

	return busy, nil
}

// InsertEvent creates an event on the shared calendar. Update notifications
// are suppressed: the integration account must not mail anyone.
func (c *Client) InsertEvent(ctx context.Context, event *Event) (*CreatedEvent, error) {
	insertURL := fmt.Sprintf("%s/calendars/%s/events?conferenceDataVersion=1&sendUpdates=none",
		c.baseURL, url.PathEscape(c.calendarID))

	var created CreatedEvent
	if err := c.post(ctx, "insert_event", insertURL, event, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("%w: created event has no id", ErrInvalidResponse)
	}

	return &created, nil
}

func (c *Client) post(ctx context.Context, op, callURL string, payload, out interface{}) (err error) {
	start := time.Now()
	defer func() { c.observe(op, start, err) }()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) observe(op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.IntegrationRequestsTotal.WithLabelValues(metricsTarget, op, outcome).Inc()
	c.metrics.IntegrationRequestDuration.WithLabelValues(metricsTarget, op).Observe(time.Since(start).Seconds())
}
