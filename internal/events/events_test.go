//nolint:goconst // Test files use literal strings for clarity.
package events

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewCommandExecutedEvent(t *testing.T) {
	t.Run("creates executed event with correct fields", func(t *testing.T) {
		before := time.Now()
		event := NewCommandExecutedEvent(3, "list", "Listed all players", 5, 2, 1)
		after := time.Now()

		if event.Type != RecordEventExecuted {
			t.Errorf("expected Type RecordEventExecuted, got %q", event.Type)
		}
		if event.Seq != 3 || event.Command != "list" || event.Feedback != "Listed all players" {
			t.Errorf("unexpected event: %+v", event)
		}
		if event.Players != 5 || event.Teams != 2 || event.Matches != 1 {
			t.Errorf("unexpected counts: %+v", event)
		}
		if event.Timestamp.Before(before) || event.Timestamp.After(after) {
			t.Error("timestamp should be within test bounds")
		}
		if _, err := uuid.Parse(event.ID); err != nil {
			t.Errorf("expected a UUID id, got %q", event.ID)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := NewCommandExecutedEvent(1, "list", "", 0, 0, 0)
		b := NewCommandExecutedEvent(1, "list", "", 0, 0, 0)
		if a.ID == b.ID {
			t.Error("expected distinct ids")
		}
	})
}

func TestNewSaveFailedEvent(t *testing.T) {
	event := NewSaveFailedEvent(7, "clear", errors.New("disk full"))

	if event.Type != RecordEventSaveFailed {
		t.Errorf("expected Type RecordEventSaveFailed, got %q", event.Type)
	}
	if event.Error != "disk full" {
		t.Errorf("expected error text, got %q", event.Error)
	}
}

func TestStoreEvents(t *testing.T) {
	loaded := NewStoreLoadedEvent("json", "/tmp/league.json", time.Millisecond)
	saved := NewStoreSavedEvent("sqlite", "/tmp/league.db", 2*time.Millisecond)

	if loaded.Type != StoreEventLoaded || loaded.Backend != "json" {
		t.Errorf("unexpected loaded event: %+v", loaded)
	}
	if saved.Type != StoreEventSaved || saved.Duration != 2*time.Millisecond {
		t.Errorf("unexpected saved event: %+v", saved)
	}
}
