package command

import (
	"slices"

	"github.com/guilhermegouw/leaguebook/internal/models"
)

// Resolution is the outcome of looking up a visible index.
type Resolution int

// Resolutions.
const (
	// Resolved means the index named an entry that is still recorded.
	Resolved Resolution = iota
	// OutOfBounds means the index is outside the shown list.
	OutOfBounds
	// Stale means the shown entry has since left the record.
	Stale
)

// Viewport is the last list of one kind shown to the user. Index arguments
// are 1-based positions in it.
type Viewport[T any] struct {
	items []T
}

// NewViewport captures items.
func NewViewport[T any](items []T) Viewport[T] {
	return Viewport[T]{items: slices.Clone(items)}
}

// Items returns a copy of the shown entries.
func (v Viewport[T]) Items() []T { return slices.Clone(v.items) }

// Len returns the number of shown entries.
func (v Viewport[T]) Len() int { return len(v.items) }

// Resolve returns the entry at the 1-based index. present tells whether the
// entry is still part of the record.
func (v Viewport[T]) Resolve(index int, present func(T) bool) (T, Resolution) {
	var zero T
	if index < 1 || index > len(v.items) {
		return zero, OutOfBounds
	}
	item := v.items[index-1]
	if !present(item) {
		return item, Stale
	}
	return item, Resolved
}

// Views holds one viewport per entity kind.
type Views struct {
	Players  Viewport[models.Player]
	Teams    Viewport[models.Team]
	Matches  Viewport[models.Match]
	Finances Viewport[models.Finance]
}

// Apply replaces the viewport named by r.Kind with r's list. Results
// without a list leave every viewport as it was.
func (v *Views) Apply(r Result) {
	switch r.Kind {
	case KindPlayers:
		v.Players = NewViewport(r.Players)
	case KindTeams:
		v.Teams = NewViewport(r.Teams)
	case KindMatches:
		v.Matches = NewViewport(r.Matches)
	case KindFinances:
		v.Finances = NewViewport(r.Finances)
	}
}
