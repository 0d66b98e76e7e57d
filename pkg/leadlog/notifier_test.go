package leadlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sportello-booking/pkg/utils"

	"go.uber.org/zap"
)

func testEntry() Entry {
	return Entry{
		Action:     "booking_intake",
		BookingRef: "BK-TEST-1",
		ServiceID:  "citizenship-descent",
		Name:       "Maria Rossi",
		Email:      "maria@example.com",
		Phone:      "+44 7700 900000",
		Locale:     "en",
		Data: map[string]any{
			"option":       "guide-35",
			"amount_label": "£35",
		},
	}
}

func TestHTTPNotifier_PostsFormFields(t *testing.T) {
	var got map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		got = map[string]string{}
		for k := range r.PostForm {
			got[k] = r.PostForm.Get(k)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewHTTPNotifier(utils.LeadLogConfig{
		EndpointURL:    srv.URL,
		Token:          "shared-secret",
		TimeoutSeconds: 2,
	}, zap.NewNop())

	n.Notify(context.Background(), testEntry())

	want := map[string]string{
		"token":       "shared-secret",
		"action":      "booking_intake",
		"booking_ref": "BK-TEST-1",
		"service":     "citizenship-descent",
		"name":        "Maria Rossi",
		"email":       "maria@example.com",
		"phone":       "+44 7700 900000",
		"locale":      "en",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("form[%q] = %q, want %q", k, got[k], v)
		}
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(got["data"]), &data); err != nil {
		t.Fatalf("data field is not JSON: %v", err)
	}
	if data["option"] != "guide-35" {
		t.Errorf("data.option = %v, want guide-35", data["option"])
	}
}

func TestHTTPNotifier_SwallowsFailures(t *testing.T) {
	// Dead endpoint: Notify must return without panicking or reporting.
	n := NewHTTPNotifier(utils.LeadLogConfig{
		EndpointURL:    "http://127.0.0.1:9/log",
		Token:          "shared-secret",
		TimeoutSeconds: 1,
	}, zap.NewNop())

	n.Notify(context.Background(), testEntry())
}

func TestHTTPNotifier_RejectionIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	n := NewHTTPNotifier(utils.LeadLogConfig{
		EndpointURL:    srv.URL,
		TimeoutSeconds: 2,
	}, zap.NewNop())

	n.Notify(context.Background(), testEntry())
}

func TestHTTPNotifier_NoEndpointIsNoOp(t *testing.T) {
	n := NewHTTPNotifier(utils.LeadLogConfig{}, zap.NewNop())
	n.Notify(context.Background(), testEntry())
}
