package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hoopside/hoopside-backend/hoopside/database"
	"github.com/hoopside/hoopside-backend/hoopside/database/models"
	"github.com/hoopside/hoopside-backend/hoopside/database/repositories"
	"github.com/hoopside/hoopside-backend/hoopside/progression"
	"github.com/hoopside/hoopside-backend/hoopside/services/mock"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"
)

// stubTxRunner executes the transactional function directly; the
// repositories behind it are mocks, so atomicity is asserted through
// call expectations rather than a real database.
type stubTxRunner struct{}

func (stubTxRunner) WithTransaction(ctx context.Context, _ *database.TxOptions, fn func(context.Context, bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

var (
	testCheckInPolicy = progression.Policy{XPPerEvent: 25, CooldownWindow: 2 * time.Hour}
	testMissionPolicy = progression.Policy{XPPerEvent: 10, CooldownWindow: 2 * time.Hour}
)

func newTestService(t *testing.T) (*ProgressService, *mock.MockLedgerRepository, *mock.MockBadgeRepository, *mock.MockNotificationRepository) {
	ctrl := gomock.NewController(t)
	ledgers := mock.NewMockLedgerRepository(ctrl)
	badges := mock.NewMockBadgeRepository(ctrl)
	notifications := mock.NewMockNotificationRepository(ctrl)

	svc := NewProgressService(
		stubTxRunner{},
		ledgers,
		badges,
		notifications,
		NewLogSink(),
		testCheckInPolicy,
		testMissionPolicy,
	)
	return svc, ledgers, badges, notifications
}

func TestProgressService_FirstCheckIn(t *testing.T) {
	svc, ledgers, badges, notifications := newTestService(t)
	occurredAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	ledgers.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "p1").
		Return(nil, repositories.ErrLedgerNotFound)

	badges.EXPECT().
		GetAwardedNamesTx(gomock.Any(), gomock.Any(), "p1").
		Return(map[string]struct{}{}, nil)

	var createdLedger *models.PlayerLedger
	ledgers.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bun.Tx, l *models.PlayerLedger) error {
			createdLedger = l
			return nil
		})

	var insertedBadges []models.BadgeAward
	badges.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bun.Tx, awards []models.BadgeAward) error {
			insertedBadges = awards
			return nil
		})

	notifications.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := svc.CheckIn(context.Background(), "p1", "court-1", occurredAt)
	if err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}

	if result.XP != 25 || result.Streak != 1 || result.TotalCompletions != 1 {
		t.Errorf("result = %+v, want xp=25 streak=1 completions=1", result)
	}
	if createdLedger == nil || createdLedger.XP != 25 || createdLedger.Streak != 1 {
		t.Errorf("created ledger = %+v", createdLedger)
	}
	if len(insertedBadges) != 1 || insertedBadges[0].BadgeName != "Rookie" {
		t.Errorf("inserted badges = %+v, want only Rookie", insertedBadges)
	}
	if len(result.AwardedBadges) != 1 || result.AwardedBadges[0].BadgeName != "Rookie" {
		t.Errorf("awarded badges = %+v, want only Rookie", result.AwardedBadges)
	}
}

func TestProgressService_CheckInCooldownRejected(t *testing.T) {
	svc, ledgers, _, _ := newTestService(t)
	lastActivity := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	ledgers.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "p1").
		Return(&models.PlayerLedger{
			PlayerID:         "p1",
			XP:               90,
			Streak:           6,
			TotalCompletions: 4,
			LastActivityAt:   lastActivity,
		}, nil)

	// No update, badge or notification calls may happen on rejection;
	// the mock controller fails the test if any do.
	_, err := svc.CheckIn(context.Background(), "p1", "court-1", lastActivity.Add(30*time.Minute))

	var cooldownErr *progression.CooldownError
	if !errors.As(err, &cooldownErr) {
		t.Fatalf("CheckIn() error = %v, want *progression.CooldownError", err)
	}
	if cooldownErr.RetryAfter != 90*time.Minute {
		t.Errorf("RetryAfter = %v, want 90m", cooldownErr.RetryAfter)
	}
}

func TestProgressService_ConsecutiveDayAwardsThresholdBadges(t *testing.T) {
	svc, ledgers, badges, notifications := newTestService(t)
	monday := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	ledgers.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "p1").
		Return(&models.PlayerLedger{
			PlayerID:         "p1",
			XP:               90,
			Streak:           6,
			LongestStreak:    6,
			TotalCompletions: 4,
			LastActivityAt:   monday,
		}, nil)

	badges.EXPECT().
		GetAwardedNamesTx(gomock.Any(), gomock.Any(), "p1").
		Return(map[string]struct{}{"Rookie": {}}, nil)

	var updatedLedger *models.PlayerLedger
	ledgers.EXPECT().
		UpdateStatsTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bun.Tx, l *models.PlayerLedger) error {
			updatedLedger = l
			return nil
		})

	var insertedBadges []models.BadgeAward
	badges.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bun.Tx, awards []models.BadgeAward) error {
			insertedBadges = awards
			return nil
		})

	notifications.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := svc.CheckIn(context.Background(), "p1", "court-1", monday.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}

	if result.XP != 115 || result.Streak != 7 || result.TotalCompletions != 5 {
		t.Errorf("result = %+v, want xp=115 streak=7 completions=5", result)
	}
	if updatedLedger.LongestStreak != 7 {
		t.Errorf("LongestStreak = %d, want 7", updatedLedger.LongestStreak)
	}

	names := map[string]bool{}
	for _, b := range insertedBadges {
		names[b.BadgeName] = true
	}
	if !names["100 Club"] || !names["Grind Week"] || len(insertedBadges) != 2 {
		t.Errorf("inserted badges = %+v, want 100 Club and Grind Week", insertedBadges)
	}
}

func TestProgressService_MissionUsesMissionPolicy(t *testing.T) {
	svc, ledgers, badges, notifications := newTestService(t)
	occurredAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	ledgers.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "p1").
		Return(nil, repositories.ErrLedgerNotFound)
	badges.EXPECT().
		GetAwardedNamesTx(gomock.Any(), gomock.Any(), "p1").
		Return(map[string]struct{}{}, nil)
	ledgers.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	badges.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	notifications.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := svc.CompleteMission(context.Background(), "p1", "m-42", occurredAt)
	if err != nil {
		t.Fatalf("CompleteMission() error = %v", err)
	}
	if result.XP != 10 {
		t.Errorf("XP = %d, want 10 (mission reward)", result.XP)
	}
}

func TestProgressService_CommitFailureRollsBackEverything(t *testing.T) {
	svc, ledgers, badges, _ := newTestService(t)
	occurredAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	boom := errors.New("insert failed")

	ledgers.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "p1").
		Return(nil, repositories.ErrLedgerNotFound)
	badges.EXPECT().
		GetAwardedNamesTx(gomock.Any(), gomock.Any(), "p1").
		Return(map[string]struct{}{}, nil)
	ledgers.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	badges.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(boom)

	// The badge insert fails inside the transaction, so the whole
	// commit fails and no notification insert is attempted.
	_, err := svc.CheckIn(context.Background(), "p1", "", occurredAt)
	if !errors.Is(err, boom) {
		t.Fatalf("CheckIn() error = %v, want %v", err, boom)
	}
}

func TestProgressService_GetProfileNotFound(t *testing.T) {
	svc, ledgers, _, _ := newTestService(t)

	ledgers.EXPECT().
		GetByPlayerID(gomock.Any(), "ghost").
		Return(nil, repositories.ErrLedgerNotFound)

	_, err := svc.GetProfile(context.Background(), "ghost")
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("GetProfile() error = %v, want ErrPlayerNotFound", err)
	}
}

func TestProgressService_AdjustXP(t *testing.T) {
	svc, ledgers, _, notifications := newTestService(t)

	ledgers.EXPECT().
		AdjustXP(gomock.Any(), gomock.Any(), "p1", int64(-50)).
		Return(&models.PlayerLedger{PlayerID: "p1", XP: 65, Streak: 7, TotalCompletions: 5}, nil)

	notifications.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := svc.AdjustXP(context.Background(), "p1", -50, "duplicate check-in cleanup")
	if err != nil {
		t.Fatalf("AdjustXP() error = %v", err)
	}
	if result.XP != 65 {
		t.Errorf("XP = %d, want 65", result.XP)
	}
}
