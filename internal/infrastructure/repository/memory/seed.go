package memory

import (
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/domain/player"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
)

const (
	SeedSportType = "nfl"
	SeedDraftYear = 2026

	LeagueIDWarRoom  = "league-war-room-2026"
	LeagueIDOpenPool = "league-open-pool-2026"
)

var seedCreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDWarRoom,
			Name:        "The War Room",
			SportType:   SeedSportType,
			DraftYear:   SeedDraftYear,
			OwnerUserID: "user-demo-1",
			Members:     []string{"user-demo-1", "user-demo-2", "user-demo-3"},
			Settings: league.Settings{
				TotalPicks: 10,
				InviteCode: "WARROOM6",
			},
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		},
		{
			ID:          LeagueIDOpenPool,
			Name:        "Open Pool",
			SportType:   SeedSportType,
			DraftYear:   SeedDraftYear,
			OwnerUserID: "user-demo-1",
			Members:     []string{"user-demo-1"},
			Settings: league.Settings{
				TotalPicks: 10,
				InviteCode: "OPENPOOL",
				PublicJoin: true,
			},
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		},
	}
}

func SeedProfiles() []userprofile.Profile {
	return []userprofile.Profile{
		{UserID: "user-demo-1", DisplayName: "Demo Commissioner", Email: "demo1@example.com"},
		{UserID: "user-demo-2", DisplayName: "Couch Scout", Email: "demo2@example.com"},
		{UserID: "user-demo-3", DisplayName: "Tape Grinder", Email: "demo3@example.com"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "nfl-2026-qb-01", Name: "Cade Morrison", Position: "QB", Team: "Texas A&M", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-edge-01", Name: "DeShawn Barker", Position: "EDGE", Team: "Ohio State", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-wr-01", Name: "Marcel Hayes", Position: "WR", Team: "Alabama", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-ot-01", Name: "Gus Lindqvist", Position: "OT", Team: "Michigan", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-cb-01", Name: "Tyree Holloway", Position: "CB", Team: "Georgia", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-rb-01", Name: "Jalen Okafor", Position: "RB", Team: "Oregon", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-dt-01", Name: "Malik Fuamatu", Position: "DT", Team: "LSU", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-te-01", Name: "Rhett Calloway", Position: "TE", Team: "Notre Dame", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-s-01", Name: "Quentin Mabry", Position: "S", Team: "Penn State", SportType: SeedSportType, DraftYear: SeedDraftYear},
		{ID: "nfl-2026-lb-01", Name: "Dre Whitfield", Position: "LB", Team: "Clemson", SportType: SeedSportType, DraftYear: SeedDraftYear},
	}
}

func SeedPredictions() []prediction.Prediction {
	players := SeedPlayers()
	picks := make([]prediction.Pick, 0, len(players))
	for i, p := range players {
		picks = append(picks, prediction.Pick{
			Position:   i + 1,
			PlayerID:   p.ID,
			Confidence: len(players) - i,
		})
	}

	return []prediction.Prediction{
		{
			UserID:     "user-demo-1",
			LeagueID:   LeagueIDWarRoom,
			Picks:      picks,
			IsComplete: true,
			UpdatedAt:  seedCreatedAt,
		},
	}
}

func SeedMockDrafts() []mockdraft.MockDraft {
	players := SeedPlayers()
	picks := make([]mockdraft.Pick, 0, len(players))
	for i, p := range players {
		picks = append(picks, mockdraft.Pick{Position: i + 1, PlayerID: p.ID})
	}

	return []mockdraft.MockDraft{
		{
			Sportscaster: "draftwire",
			Version:      "1.0",
			SportType:    SeedSportType,
			DraftYear:    SeedDraftYear,
			Picks:        picks,
			UpdatedAt:    seedCreatedAt,
		},
	}
}
