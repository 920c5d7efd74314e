package engine

import "errors"

var (
	// ErrWrongSideShot rejects a non-amendment action from the side that is
	// not at the table.
	ErrWrongSideShot = errors.New("side attempted to act out of turn")

	// ErrDuplicateBreak rejects a second break attempt by a side that has
	// already taken its one allowed break.
	ErrDuplicateBreak = errors.New("only one break shot allowed per side")

	// ErrIncorrectVisits rejects an action whose visit credit would break
	// the visit-balance rule: visit counts may never drift apart by more
	// than one, and no side may overtake the side that broke.
	ErrIncorrectVisits = errors.New("visit credit would unbalance the visit counts")

	// ErrEmptyHistory reports an undo request with nothing to restore.
	ErrEmptyHistory = errors.New("nothing to undo")
)

// IsWarning reports whether err is an expected user-facing condition rather
// than a usage fault. Warnings leave all state untouched and are reported
// informationally.
func IsWarning(err error) bool {
	return errors.Is(err, ErrDuplicateBreak) || errors.Is(err, ErrEmptyHistory)
}
