package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHealthHandler_Status(t *testing.T) {
	h := &HealthHandler{}

	c, rec := newContext(t, http.MethodGet, "/status", "")
	if err := h.Status(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "{\"status\":\"Ok\"}\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestHealthHandler_Readiness_RedisDisabled(t *testing.T) {
	h := NewHealthHandler(nil, nil)
	h.checks[0].ping = func(context.Context) error { return nil }

	c, rec := newContext(t, http.MethodGet, "/health/ready", "")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Dependencies["redis"].Status != "disabled" || resp.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("unexpected dependencies: %+v", resp.Dependencies)
	}
}

func TestHealthHandler_Readiness_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	h := NewHealthHandler(nil, rdb)
	h.checks[0].ping = func(context.Context) error { return nil }

	c, rec := newContext(t, http.MethodGet, "/health/ready", "")
	_ = h.Readiness(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	mr.Close()

	c, rec = newContext(t, http.MethodGet, "/health/ready", "")
	_ = h.Readiness(c)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 once redis is down, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness_MongoDown(t *testing.T) {
	h := NewHealthHandler(nil, nil)
	h.checks[0].ping = func(context.Context) error { return errors.New("server selection timeout") }

	c, rec := newContext(t, http.MethodGet, "/health/ready", "")
	_ = h.Readiness(c)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["mongodb"].Error == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
