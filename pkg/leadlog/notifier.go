// Package leadlog mirrors booking submissions to an external spreadsheet
// webhook. Delivery is best effort: the flow must never wait on it or fail
// because of it.
package leadlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sportello-booking/pkg/utils"

	"go.uber.org/zap"
)

// Entry is one lead-log record.
type Entry struct {
	Action     string
	BookingRef string
	ServiceID  string
	Name       string
	Email      string
	Phone      string
	Locale     string
	Data       map[string]any
}

// Notifier delivers entries to the lead log. Implementations must swallow
// every failure: Notify has no error return on purpose.
type Notifier interface {
	Notify(ctx context.Context, entry Entry)
}

// HTTPNotifier posts form-encoded entries to a webhook endpoint. One attempt,
// no retry.
type HTTPNotifier struct {
	endpoint string
	token    string
	client   *http.Client
	log      *zap.Logger
}

func NewHTTPNotifier(cfg utils.LeadLogConfig, log *zap.Logger) *HTTPNotifier {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &HTTPNotifier{
		endpoint: cfg.EndpointURL,
		token:    cfg.Token,
		client:   &http.Client{Timeout: timeout},
		log:      log.With(zap.String("service", "leadlog")),
	}
}

func (n *HTTPNotifier) Notify(ctx context.Context, entry Entry) {
	if n.endpoint == "" {
		return
	}

	form := url.Values{}
	form.Set("token", n.token)
	form.Set("action", entry.Action)
	form.Set("booking_ref", entry.BookingRef)
	form.Set("service", entry.ServiceID)
	form.Set("name", entry.Name)
	form.Set("email", entry.Email)
	form.Set("phone", entry.Phone)
	form.Set("locale", entry.Locale)

	if entry.Data != nil {
		data, err := json.Marshal(entry.Data)
		if err == nil {
			form.Set("data", string(data))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		n.log.Warn("Lead log request build failed", zap.Error(err), zap.String("booking_ref", entry.BookingRef))
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Warn("Lead log delivery failed", zap.Error(err), zap.String("booking_ref", entry.BookingRef))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.log.Warn("Lead log endpoint rejected entry",
			zap.Int("status", resp.StatusCode),
			zap.String("booking_ref", entry.BookingRef),
		)
	}
}
