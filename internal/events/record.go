// Package events defines the payloads published while the league is edited.
package events

import (
	"time"

	"github.com/google/uuid"
)

// RecordEventType tells what happened to a command.
type RecordEventType string

// Record event type constants.
const (
	RecordEventExecuted   RecordEventType = "executed"
	RecordEventSaveFailed RecordEventType = "save_failed"
)

// RecordEvent describes one executed command and the league it left behind.
type RecordEvent struct {
	ID        string
	Seq       int
	Command   string
	Feedback  string
	Type      RecordEventType
	Timestamp time.Time

	// League size after the command.
	Players int
	Teams   int
	Matches int

	// Error is set for RecordEventSaveFailed.
	Error string
}

// NewCommandExecutedEvent creates an executed event.
func NewCommandExecutedEvent(seq int, command, feedback string, players, teams, matches int) RecordEvent {
	return RecordEvent{
		ID:        uuid.New().String(),
		Seq:       seq,
		Command:   command,
		Feedback:  feedback,
		Type:      RecordEventExecuted,
		Timestamp: time.Now(),
		Players:   players,
		Teams:     teams,
		Matches:   matches,
	}
}

// NewSaveFailedEvent creates an event for a command whose result could not
// be persisted.
func NewSaveFailedEvent(seq int, command string, err error) RecordEvent {
	return RecordEvent{
		ID:        uuid.New().String(),
		Seq:       seq,
		Command:   command,
		Type:      RecordEventSaveFailed,
		Timestamp: time.Now(),
		Error:     err.Error(),
	}
}
