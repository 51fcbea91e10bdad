package record

import (
	"errors"

	"github.com/guilhermegouw/leaguebook/internal/models"
)

// Collection errors.
var (
	ErrDuplicatePlayer  = errors.New("player already exists")
	ErrDuplicateJersey  = errors.New("jersey number already taken in team")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrDuplicateTeam    = errors.New("team already exists")
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamHasMatches   = errors.New("team still has recorded matches")
	ErrDuplicateMatch   = errors.New("match already exists")
	ErrMatchNotFound    = errors.New("match not found")
	ErrDuplicateFinance = errors.New("finance already exists")
	ErrFinanceNotFound  = errors.New("finance not found")

	// ErrSameTeam is returned when a match or a transfer names a team twice.
	ErrSameTeam = models.ErrSameTeam
)
