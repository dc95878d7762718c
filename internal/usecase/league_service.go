package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/draftpool/confidence-pool/internal/domain/league"
	"github.com/draftpool/confidence-pool/internal/domain/prediction"
	"github.com/draftpool/confidence-pool/internal/domain/userprofile"
	"github.com/draftpool/confidence-pool/internal/platform/id"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
)

// Invite codes avoid 0/O/1/I so they survive being read aloud.
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const inviteCodeLength = 8

const defaultTotalPicks = 32

// CreateLeagueInput is the owner's request for a new pool.
type CreateLeagueInput struct {
	Name       string
	SportType  string
	DraftYear  int
	OwnerID    string
	TotalPicks int
	PublicJoin bool
}

// LeagueMember pairs a roster entry with its resolved profile.
type LeagueMember struct {
	UserID      string
	DisplayName string
	IsOwner     bool
}

type LeagueService struct {
	leagueRepo     league.Repository
	predictionRepo prediction.Repository
	profileRepo    userprofile.Repository
	idGen          id.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	predictionRepo prediction.Repository,
	profileRepo userprofile.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueService{
		leagueRepo:     leagueRepo,
		predictionRepo: predictionRepo,
		profileRepo:    profileRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

// Create opens a new league with the caller as owner and first member.
func (s *LeagueService) Create(ctx context.Context, in CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Create")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.SportType = strings.ToLower(strings.TrimSpace(in.SportType))
	in.OwnerID = strings.TrimSpace(in.OwnerID)
	if in.TotalPicks == 0 {
		in.TotalPicks = defaultTotalPicks
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	inviteCode, err := newInviteCode()
	if err != nil {
		return league.League{}, fmt.Errorf("generate invite code: %w", err)
	}

	now := s.now().UTC()
	item := league.League{
		ID:          leagueID,
		Name:        in.Name,
		SportType:   in.SportType,
		DraftYear:   in.DraftYear,
		OwnerUserID: in.OwnerID,
		Members:     []string{in.OwnerID},
		Settings: league.Settings{
			TotalPicks: in.TotalPicks,
			InviteCode: inviteCode,
			PublicJoin: in.PublicJoin,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	s.logger.InfoContext(ctx, "league created",
		"league_id", item.ID,
		"sport_type", item.SportType,
		"draft_year", item.DraftYear,
		"owner_id", item.OwnerUserID,
	)

	return item, nil
}

// GetByID returns one league by its opaque id.
func (s *LeagueService) GetByID(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetByID")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

// JoinByInviteCode adds the caller to the league behind the code. Joining a
// league twice is a no-op.
func (s *LeagueService) JoinByInviteCode(ctx context.Context, userID, inviteCode string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.JoinByInviteCode")
	defer span.End()

	userID = strings.TrimSpace(userID)
	inviteCode = strings.ToUpper(strings.TrimSpace(inviteCode))
	if userID == "" || inviteCode == "" {
		return league.League{}, fmt.Errorf("%w: user id and invite code are required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by invite code: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: no league for invite code", ErrNotFound)
	}

	return s.addMember(ctx, item, userID)
}

// JoinPublic adds the caller to an open league by id.
func (s *LeagueService) JoinPublic(ctx context.Context, userID, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.JoinPublic")
	defer span.End()

	userID = strings.TrimSpace(userID)
	item, err := s.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, err
	}
	if userID == "" {
		return league.League{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !item.Settings.PublicJoin {
		return league.League{}, fmt.Errorf("%w: league %s requires an invite", ErrUnauthorized, item.ID)
	}

	return s.addMember(ctx, item, userID)
}

func (s *LeagueService) addMember(ctx context.Context, item league.League, userID string) (league.League, error) {
	if item.HasMember(userID) {
		return item, nil
	}

	item.Members = append(item.Members, userID)
	item.UpdatedAt = s.now().UTC()
	if err := s.leagueRepo.Update(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("add league member: %w", err)
	}

	s.logger.InfoContext(ctx, "league member joined", "league_id", item.ID, "user_id", userID)

	return item, nil
}

// ListMine returns every league the caller belongs to.
func (s *LeagueService) ListMine(ctx context.Context, userID string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListMine")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list leagues by member: %w", err)
	}

	return leagues, nil
}

// ListPublic returns open-join leagues for one draft.
func (s *LeagueService) ListPublic(ctx context.Context, sportType string, draftYear int) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListPublic")
	defer span.End()

	sportType = strings.ToLower(strings.TrimSpace(sportType))
	if sportType == "" || draftYear <= 0 {
		return nil, fmt.Errorf("%w: sport type and draft year are required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListPublic(ctx, sportType, draftYear)
	if err != nil {
		return nil, fmt.Errorf("list public leagues: %w", err)
	}

	return leagues, nil
}

// Members resolves the league roster to display names. Profile lookups that
// fail degrade to synthesized names rather than failing the listing.
func (s *LeagueService) Members(ctx context.Context, leagueID string) ([]LeagueMember, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Members")
	defer span.End()

	item, err := s.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.ListByIDs(ctx, item.Members)
	if err != nil {
		s.logger.WarnContext(ctx, "member profile lookup failed, using fallback names", "league_id", item.ID, "error", err)
		profiles = nil
	}
	byID := make(map[string]userprofile.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.UserID] = p
	}

	members := make([]LeagueMember, 0, len(item.Members))
	for _, memberID := range item.Members {
		name := fallbackDisplayName(memberID)
		if p, ok := byID[memberID]; ok && strings.TrimSpace(p.DisplayName) != "" {
			name = p.DisplayName
		}
		members = append(members, LeagueMember{
			UserID:      memberID,
			DisplayName: name,
			IsOwner:     memberID == item.OwnerUserID,
		})
	}

	return members, nil
}

// Delete removes a league and every prediction filed in it. Only the owner
// may delete.
func (s *LeagueService) Delete(ctx context.Context, userID, leagueID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Delete")
	defer span.End()

	item, err := s.GetByID(ctx, leagueID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(userID) != item.OwnerUserID {
		return fmt.Errorf("%w: only the owner may delete league %s", ErrUnauthorized, item.ID)
	}

	if err := s.predictionRepo.DeleteByLeague(ctx, item.ID); err != nil {
		return fmt.Errorf("delete league predictions: %w", err)
	}
	if err := s.leagueRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}

	s.logger.InfoContext(ctx, "league deleted", "league_id", item.ID, "owner_id", item.OwnerUserID)

	return nil
}

func newInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	code := make([]byte, inviteCodeLength)
	for i, b := range buf {
		code[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}

	return string(code), nil
}
