package draftstate

import "time"

// State carries the lifecycle flags for one (sportType, draftYear) draft.
// IsLive freezes prediction edits; IsCompleted finalizes standings. A draft
// with no stored state is treated as neither live nor completed.
type State struct {
	SportType   string
	DraftYear   int
	IsLive      bool
	IsCompleted bool
	UpdatedAt   time.Time
}
