package debug

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	return string(data)
}

func TestEnableDisable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	t.Cleanup(Disable)

	if !IsEnabled() {
		t.Error("expected logging to be enabled")
	}
	if LogPath() != path {
		t.Errorf("LogPath() = %q, want %q", LogPath(), path)
	}

	Log("plain %d", 7)
	Event("controller", "execute", "list")
	Error("storage", errors.New("disk full"), "saving league")

	Disable()
	if IsEnabled() {
		t.Error("expected logging to be disabled")
	}
	Log("after disable")

	content := readLog(t, path)
	for _, want := range []string{
		"League Debug Session Started",
		"plain 7",
		"[controller] execute: list",
		"[storage] ERROR: saving league - disk full",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "after disable") {
		t.Error("message logged after Disable")
	}
}

func TestTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	t.Cleanup(Disable)

	hub := pubsub.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	Trace(ctx, hub)
	hub.Record.Publish(pubsub.EventExecuted, events.NewCommandExecutedEvent(1, "list", "Listed all players", 2, 1, 0))
	hub.Store.Publish(pubsub.EventSaved, events.NewStoreSavedEvent("json", "league.json", time.Millisecond))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		content := readLog(t, path)
		if strings.Contains(content, `[record] executed: #1 "list" players=2 teams=1 matches=0`) &&
			strings.Contains(content, "[store] saved: json league.json") {
			hub.Shutdown()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	hub.Shutdown()
	t.Errorf("trace lines not written:\n%s", readLog(t, path))
}
