package live

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/internal/hub"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestServe_InvalidBBox_RejectedBeforeUpgrade(t *testing.T) {
	t.Parallel()

	liveHub := hub.New(newTestLogger(), time.Hour, 32)
	defer liveHub.Shutdown()

	h := NewHandler(newTestLogger(), liveHub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws?bbox=91,0,92,1", nil)
	rr := httptest.NewRecorder()

	h.Serve(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestServe_DeliversEventsOverWebsocket(t *testing.T) {
	t.Parallel()

	liveHub := hub.New(newTestLogger(), time.Hour, 32)
	defer liveHub.Shutdown()

	h := NewHandler(newTestLogger(), liveHub)
	srv := httptest.NewServer(http.HandlerFunc(h.Serve))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?bbox=9,19,11,21"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()

	// subscription is registered during the upgrade handshake handling; give
	// the server goroutine a beat before publishing
	deadline := time.Now().Add(time.Second)
	for liveHub.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	report, err := domain.NewReport(3, 10.0, 20.0, nil)
	if err != nil {
		t.Fatalf("NewReport: %v", err)
	}
	liveHub.PublishCreated(report)

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got struct {
		Type string `json:"type"`
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(frame, &got); err != nil {
		t.Fatalf("unmarshal %s: %v", frame, err)
	}
	if got.Type != domain.EventNewReport {
		t.Fatalf("type=%q want=%q", got.Type, domain.EventNewReport)
	}
	if got.Data.ID != report.ID.String() {
		t.Fatalf("id=%q want=%q", got.Data.ID, report.ID)
	}
}

func TestServe_ClientDisconnect_Unsubscribes(t *testing.T) {
	t.Parallel()

	liveHub := hub.New(newTestLogger(), time.Hour, 32)
	defer liveHub.Shutdown()

	h := NewHandler(newTestLogger(), liveHub)
	srv := httptest.NewServer(http.HandlerFunc(h.Serve))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for liveHub.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	_ = ws.Close()

	deadline = time.Now().Add(time.Second)
	for liveHub.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber not removed after disconnect, len=%d", liveHub.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
