package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/hoopside/hoopside-backend/hoopside/database"
	"github.com/hoopside/hoopside-backend/hoopside/database/models"
	"github.com/hoopside/hoopside-backend/hoopside/database/repositories"
	"github.com/hoopside/hoopside-backend/hoopside/progression"
	"github.com/uptrace/bun"
)

var ErrPlayerNotFound = errors.New("player not found")

// ActivityResult is what a caller gets back from an accepted activity
// event: the committed ledger state plus any badges earned by it.
type ActivityResult struct {
	XP               int64               `json:"xp"`
	Streak           int                 `json:"streak"`
	LongestStreak    int                 `json:"longest_streak"`
	TotalCompletions int64               `json:"total_completions"`
	Level            int                 `json:"level"`
	Rank             progression.Rank    `json:"rank"`
	AwardedBadges    []models.BadgeAward `json:"awarded_badges"`
}

// ProgressService owns every mutation of a player's ledger. Each
// activity event runs as one serializable transaction: ledger delta,
// new badge rows and the notification record commit together or not
// at all.
type ProgressService struct {
	tx            database.TxRunner
	ledgers       repositories.LedgerRepository
	badges        repositories.BadgeRepository
	notifications repositories.NotificationRepository
	sink          NotificationSink

	checkInPolicy progression.Policy
	missionPolicy progression.Policy
}

func NewProgressService(
	tx database.TxRunner,
	ledgers repositories.LedgerRepository,
	badges repositories.BadgeRepository,
	notifications repositories.NotificationRepository,
	sink NotificationSink,
	checkInPolicy, missionPolicy progression.Policy,
) *ProgressService {
	return &ProgressService{
		tx:            tx,
		ledgers:       ledgers,
		badges:        badges,
		notifications: notifications,
		sink:          sink,
		checkInPolicy: checkInPolicy,
		missionPolicy: missionPolicy,
	}
}

// CheckIn records a court check-in for the player.
func (s *ProgressService) CheckIn(ctx context.Context, playerID, courtID string, occurredAt time.Time) (*ActivityResult, error) {
	event := progression.ActivityEvent{
		PlayerID:   playerID,
		Kind:       progression.ActivityCheckIn,
		OccurredAt: occurredAt,
	}

	title := "Checked in!"
	body := "Court check-in recorded."
	if courtID != "" {
		body = fmt.Sprintf("Checked in at court %s.", courtID)
	}

	return s.apply(ctx, event, s.checkInPolicy, models.NotificationCheckIn, title, body)
}

// CompleteMission records a mission completion for the player.
func (s *ProgressService) CompleteMission(ctx context.Context, playerID, missionID string, occurredAt time.Time) (*ActivityResult, error) {
	event := progression.ActivityEvent{
		PlayerID:   playerID,
		Kind:       progression.ActivityMissionComplete,
		OccurredAt: occurredAt,
	}

	title := "Mission complete!"
	body := fmt.Sprintf("Mission %s completed.", missionID)

	return s.apply(ctx, event, s.missionPolicy, models.NotificationMission, title, body)
}

func (s *ProgressService) apply(ctx context.Context, event progression.ActivityEvent, policy progression.Policy, ntype models.NotificationType, title, body string) (*ActivityResult, error) {
	var result *ActivityResult
	var notification *models.Notification

	err := s.tx.WithTransaction(ctx, database.SerializableTxOptions(), func(ctx context.Context, tx bun.Tx) error {
		ledger, err := s.ledgers.GetForUpdateTx(ctx, tx, event.PlayerID)
		created := false
		if err != nil {
			if !errors.Is(err, repositories.ErrLedgerNotFound) {
				return err
			}
			// First activity for this player: bootstrap a zero-value
			// ledger so the engine sees the documented defaults.
			ledger = &models.PlayerLedger{PlayerID: event.PlayerID}
			created = true
		}

		delta, err := progression.ApplyActivity(ledger, event, policy)
		if err != nil {
			return err
		}

		after := progression.LedgerAfter(ledger, delta)

		awarded, err := s.badges.GetAwardedNamesTx(ctx, tx, event.PlayerID)
		if err != nil {
			return err
		}
		newBadges := progression.EvaluateBadges(after, awarded, event.OccurredAt)

		if created {
			if err := s.ledgers.CreateTx(ctx, tx, after); err != nil {
				return err
			}
		} else if err := s.ledgers.UpdateStatsTx(ctx, tx, after); err != nil {
			return err
		}

		if err := s.badges.InsertTx(ctx, tx, newBadges); err != nil {
			return err
		}

		notification = &models.Notification{
			ID:        int64(snowflake.New(time.Now())),
			PlayerID:  event.PlayerID,
			Type:      ntype,
			Title:     title,
			Body:      badgeAwareBody(body, newBadges),
			CreatedAt: event.OccurredAt,
		}
		if err := s.notifications.InsertTx(ctx, tx, notification); err != nil {
			return err
		}

		result = &ActivityResult{
			XP:               delta.NewXP,
			Streak:           delta.NewStreak,
			LongestStreak:    delta.NewLongestStreak,
			TotalCompletions: delta.NewTotalCompletions,
			Level:            delta.NewLevel,
			Rank:             delta.NewRank,
			AwardedBadges:    newBadges,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Delivery failures must never roll back the committed ledger, so
	// dispatch happens after the transaction and only gets logged.
	go func(n models.Notification) {
		if err := s.sink.Deliver(context.Background(), &n); err != nil {
			slog.Warn("Notification delivery failed",
				slog.String("type", "sys"),
				slog.String("player_id", n.PlayerID),
				slog.String("error", err.Error()))
		}
	}(*notification)

	slog.Info("Activity committed",
		slog.String("type", "sys"),
		slog.String("player_id", event.PlayerID),
		slog.String("kind", string(event.Kind)),
		slog.Int64("xp", result.XP),
		slog.Int("streak", result.Streak),
		slog.Int("new_badges", len(result.AwardedBadges)))

	return result, nil
}

// GetProfile returns the player's committed ledger state.
func (s *ProgressService) GetProfile(ctx context.Context, playerID string) (*ActivityResult, error) {
	ledger, err := s.ledgers.GetByPlayerID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrLedgerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return &ActivityResult{
		XP:               ledger.XP,
		Streak:           ledger.Streak,
		LongestStreak:    ledger.LongestStreak,
		TotalCompletions: ledger.TotalCompletions,
		Level:            progression.LevelFor(ledger.XP),
		Rank:             progression.RankFor(ledger.XP),
	}, nil
}

// AdjustXP applies an explicit admin correction: the only path where
// XP may move down. A notification records the correction for the
// player; badge rules are deliberately not re-evaluated here.
func (s *ProgressService) AdjustXP(ctx context.Context, playerID string, delta int64, reason string) (*ActivityResult, error) {
	var result *ActivityResult

	err := s.tx.WithTransaction(ctx, database.SerializableTxOptions(), func(ctx context.Context, tx bun.Tx) error {
		ledger, err := s.ledgers.AdjustXP(ctx, tx, playerID, delta)
		if err != nil {
			if errors.Is(err, repositories.ErrLedgerNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		notification := &models.Notification{
			ID:        int64(snowflake.New(time.Now())),
			PlayerID:  playerID,
			Type:      models.NotificationAdmin,
			Title:     "XP adjusted",
			Body:      fmt.Sprintf("Your XP was adjusted by %+d. Reason: %s", delta, reason),
			CreatedAt: time.Now(),
		}
		if err := s.notifications.InsertTx(ctx, tx, notification); err != nil {
			return err
		}

		result = &ActivityResult{
			XP:               ledger.XP,
			Streak:           ledger.Streak,
			LongestStreak:    ledger.LongestStreak,
			TotalCompletions: ledger.TotalCompletions,
			Level:            progression.LevelFor(ledger.XP),
			Rank:             progression.RankFor(ledger.XP),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func badgeAwareBody(body string, badges []models.BadgeAward) string {
	if len(badges) == 0 {
		return body
	}
	names := ""
	for i, b := range badges {
		if i > 0 {
			names += ", "
		}
		names += b.BadgeName
	}
	return fmt.Sprintf("%s New badges: %s.", body, names)
}
