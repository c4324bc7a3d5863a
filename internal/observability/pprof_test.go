package observability

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-league-api/internal/config"
	"github.com/riskibarqy/fpl-league-api/internal/platform/logging"
)

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no server when disabled")
	}
	if err := StopPprofServer(context.Background(), srv, logging.NewNop()); err != nil {
		t.Fatalf("stop pprof: %v", err)
	}
}

func TestStartPprofServer_ServesIndexUntilStopped(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + srv.Addr + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := StopPprofServer(ctx, srv, logging.NewNop()); err != nil {
		t.Fatalf("stop pprof: %v", err)
	}
	if _, err := client.Get("http://" + srv.Addr + "/debug/pprof/"); err == nil {
		t.Fatalf("expected request to fail after stop")
	}
}

func TestStartPprofServer_BindFailure(t *testing.T) {
	first, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	t.Cleanup(func() { _ = StopPprofServer(context.Background(), first, logging.NewNop()) })

	if _, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: first.Addr}, logging.NewNop()); err == nil {
		t.Fatalf("expected error binding an address already in use")
	}
}
