package postgres

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	qb "github.com/draftpool/confidence-pool/internal/platform/querybuilder"
)

type mockDraftTableModel struct {
	Sportscaster string    `db:"sportscaster"`
	Version      string    `db:"version"`
	SportType    string    `db:"sport_type"`
	DraftYear    int       `db:"draft_year"`
	Picks        string    `db:"picks"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type mockDraftPickPayload struct {
	Position int    `json:"position"`
	PlayerID string `json:"playerId"`
}

type MockDraftRepository struct {
	db *sqlx.DB
}

func NewMockDraftRepository(db *sqlx.DB) *MockDraftRepository {
	return &MockDraftRepository{db: db}
}

func (r *MockDraftRepository) Get(ctx context.Context, sportscaster, version, sportType string, draftYear int) (mockdraft.MockDraft, bool, error) {
	query, args, err := qb.Select("*").From("mock_drafts").
		Where(
			qb.Eq("sportscaster", sportscaster),
			qb.Eq("version", version),
			qb.Eq("sport_type", sportType),
			qb.Eq("draft_year", draftYear),
		).
		ToSQL()
	if err != nil {
		return mockdraft.MockDraft{}, false, fmt.Errorf("build get mock draft query: %w", err)
	}

	var row mockDraftTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return mockdraft.MockDraft{}, false, nil
		}
		return mockdraft.MockDraft{}, false, fmt.Errorf("get mock draft: %w", err)
	}

	out, err := mockDraftFromTable(row)
	if err != nil {
		return mockdraft.MockDraft{}, false, err
	}

	return out, true, nil
}

func (r *MockDraftRepository) ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]mockdraft.MockDraft, error) {
	query, args, err := qb.Select("*").From("mock_drafts").
		Where(
			qb.Eq("sport_type", sportType),
			qb.Eq("draft_year", draftYear),
		).
		OrderBy("sportscaster", "version").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list mock drafts query: %w", err)
	}

	var rows []mockDraftTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list mock drafts: %w", err)
	}

	out := make([]mockdraft.MockDraft, 0, len(rows))
	for _, row := range rows {
		item, err := mockDraftFromTable(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *MockDraftRepository) Upsert(ctx context.Context, item mockdraft.MockDraft) error {
	payload := make([]mockDraftPickPayload, 0, len(item.Picks))
	for _, pick := range item.Picks {
		payload = append(payload, mockDraftPickPayload{Position: pick.Position, PlayerID: pick.PlayerID})
	}
	picks, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mock draft picks: %w", err)
	}

	query, args, err := qb.InsertInto("mock_drafts").
		Columns("sportscaster", "version", "sport_type", "draft_year", "picks", "updated_at").
		Values(item.Sportscaster, item.Version, item.SportType, item.DraftYear, string(picks), item.UpdatedAt).
		Suffix(`ON CONFLICT (sportscaster, version, sport_type, draft_year) DO UPDATE SET
			picks = EXCLUDED.picks,
			updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert mock draft query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert mock draft: %w", err)
	}

	return nil
}

func mockDraftFromTable(row mockDraftTableModel) (mockdraft.MockDraft, error) {
	var payload []mockDraftPickPayload
	if row.Picks != "" {
		if err := sonic.Unmarshal([]byte(row.Picks), &payload); err != nil {
			return mockdraft.MockDraft{}, fmt.Errorf("decode mock draft picks: %w", err)
		}
	}

	picks := make([]mockdraft.Pick, 0, len(payload))
	for _, p := range payload {
		picks = append(picks, mockdraft.Pick{Position: p.Position, PlayerID: p.PlayerID})
	}

	return mockdraft.MockDraft{
		Sportscaster: row.Sportscaster,
		Version:      row.Version,
		SportType:    row.SportType,
		DraftYear:    row.DraftYear,
		Picks:        picks,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
