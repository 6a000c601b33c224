package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/smallbizniz/support-portal/internal/api/http"
	"github.com/smallbizniz/support-portal/internal/api/http/handlers"
	"github.com/smallbizniz/support-portal/internal/events"
)

type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newContactApp(dispatcher events.Dispatcher) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	app.Post("/api/contact", handlers.NewContactHandler(dispatcher).Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func TestContactSubmit(t *testing.T) {
	dispatcher := &capturingDispatcher{}
	app := newContactApp(dispatcher)

	status, body := postJSON(t, app, "/api/contact",
		`{"name":"Visitor","email":"visitor@example.com","subject":"Question","message":"How do I sign up?"}`)
	if status != 200 {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["message"] == "" {
		t.Error("empty confirmation message")
	}

	if len(dispatcher.published) != 1 {
		t.Fatalf("published %d events, want 1", len(dispatcher.published))
	}
	payload := dispatcher.published[0].Payload.(events.ContactMessagePayload)
	if payload.Email != "visitor@example.com" || payload.Subject != "Question" {
		t.Errorf("payload: %+v", payload)
	}
}

func TestContactValidation(t *testing.T) {
	dispatcher := &capturingDispatcher{}
	app := newContactApp(dispatcher)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"v@example.com","subject":"s","message":"m"}`},
		{"missing message", `{"name":"V","email":"v@example.com","subject":"s","message":"  "}`},
		{"bad email", `{"name":"V","email":"not-an-email","subject":"s","message":"m"}`},
		{"email without tld", `{"name":"V","email":"v@example","subject":"s","message":"m"}`},
		{"not json", `name=V`},
	}
	for _, tc := range cases {
		status, body := postJSON(t, app, "/api/contact", tc.body)
		if status != 400 {
			t.Errorf("%s: status = %d, body = %v", tc.name, status, body)
		}
	}
	if len(dispatcher.published) != 0 {
		t.Errorf("rejected submissions published %d events", len(dispatcher.published))
	}
}
