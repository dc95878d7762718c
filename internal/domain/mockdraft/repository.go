package mockdraft

import "context"

type Repository interface {
	Get(ctx context.Context, sportscaster, version, sportType string, draftYear int) (MockDraft, bool, error)
	ListBySportYear(ctx context.Context, sportType string, draftYear int) ([]MockDraft, error)
	Upsert(ctx context.Context, item MockDraft) error
}
