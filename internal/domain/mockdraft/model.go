package mockdraft

import (
	"fmt"
	"time"
)

// Pick is one projected slot in an expert mock draft. Mock drafts carry no
// explicit confidence; weight is derived from position at evaluation time.
type Pick struct {
	Position int
	PlayerID string
}

// MockDraft is a sportscaster's published board for one draft, identified by
// (sportscaster, version, sportType, draftYear).
type MockDraft struct {
	Sportscaster string
	Version      string
	SportType    string
	DraftYear    int
	Picks        []Pick
	UpdatedAt    time.Time
}

func (m MockDraft) Validate() error {
	if m.Sportscaster == "" {
		return fmt.Errorf("mock draft sportscaster is required")
	}
	if m.Version == "" {
		return fmt.Errorf("mock draft version is required")
	}
	if m.SportType == "" {
		return fmt.Errorf("mock draft sport type is required")
	}
	if m.DraftYear <= 0 {
		return fmt.Errorf("mock draft year must be greater than zero")
	}
	if len(m.Picks) == 0 {
		return fmt.Errorf("mock draft picks are required")
	}
	for _, pick := range m.Picks {
		if pick.Position < 1 {
			return fmt.Errorf("mock draft pick position must be greater than zero")
		}
		if pick.PlayerID == "" {
			return fmt.Errorf("mock draft pick at position %d has no player", pick.Position)
		}
	}

	return nil
}
