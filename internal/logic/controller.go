// Package logic runs user commands against the league: it parses each line,
// executes it, saves the league and keeps the lists the user last saw.
package logic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/guilhermegouw/leaguebook/internal/command"
	"github.com/guilhermegouw/leaguebook/internal/debug"
	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/parser"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
	"github.com/guilhermegouw/leaguebook/internal/record"
	"github.com/guilhermegouw/leaguebook/internal/storage"
)

// ErrPersistence wraps every failure to save the league after a command.
var ErrPersistence = errors.New("league could not be saved")

// Config contains the controller's collaborators.
type Config struct {
	League  *record.League  // Starting league; empty when nil
	Storage storage.Storage // Required
	Hub     *pubsub.Hub     // Optional pub/sub hub for event publishing
}

// Controller owns one editing session.
type Controller struct { //nolint:govet // fieldalignment: preserving logical field order
	league   *record.League
	store    storage.Storage
	hub      *pubsub.Hub
	views    command.Views
	executed int
	mu       sync.Mutex
}

// New creates a controller.
func New(cfg Config) *Controller {
	league := cfg.League
	if league == nil {
		league = record.New()
	}
	return &Controller{
		league: league,
		store:  cfg.Storage,
		hub:    cfg.Hub,
	}
}

// Execute runs one command line. The league is saved after every command,
// including read-only ones. When saving fails the command's result is
// returned together with an error wrapping ErrPersistence; the in-memory
// league keeps the change but the shown lists are not replaced.
func (c *Controller) Execute(ctx context.Context, line string) (command.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.executed++
	seq := c.executed
	verb := parser.Verb(line)

	cmd := parser.Parse(line)
	debug.Event("controller", "execute", fmt.Sprintf("#%d %T %q", seq, cmd, line))

	result := cmd.Execute(command.Env{League: c.league, Views: c.views})

	if err := c.store.Save(ctx, c.league); err != nil {
		debug.Error("controller", err, "saving league")
		c.publish(pubsub.EventSaveFailed, events.NewSaveFailedEvent(seq, verb, err))
		return result, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	c.views.Apply(result)

	players, teams, matches := c.league.Counts()
	c.publish(pubsub.EventExecuted, events.NewCommandExecutedEvent(seq, verb, result.Feedback, players, teams, matches))
	return result, nil
}

func (c *Controller) publish(eventType pubsub.EventType, event events.RecordEvent) {
	if c.hub == nil {
		return
	}
	c.hub.Record.Publish(eventType, event)
}

// League returns a snapshot of the league.
func (c *Controller) League() *record.League {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.league.Clone()
}

// Views returns the lists last shown to the user.
func (c *Controller) Views() command.Views {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.views
}

// Executed returns how many commands have run.
func (c *Controller) Executed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.executed
}

// StoragePath returns where the league is saved.
func (c *Controller) StoragePath() string {
	return c.store.Path()
}
