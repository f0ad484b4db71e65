package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"coachapi/internal/model"
	"coachapi/internal/repository"
)

var ErrInvalidSession = errors.New("invalid sleep session")

// awakeningPenaltyMin is the minutes of sleep discounted per recorded awakening.
const awakeningPenaltyMin = 10

// LogSleepInput carries one night of sleep as entered by the user.
type LogSleepInput struct {
	BedTime    time.Time `json:"bed_time"`
	WakeTime   time.Time `json:"wake_time"`
	Quality    int       `json:"quality"`
	Awakenings int       `json:"awakenings"`
}

// SleepService defines the sleep tracking and analysis use cases.
type SleepService interface {
	// LogSession validates and stores one sleep session, deriving duration
	// and efficiency.
	LogSession(ctx context.Context, userID string, in LogSleepInput) (*model.SleepSession, error)

	// Recent returns a user's sessions from the past days, newest first.
	Recent(ctx context.Context, userID string, days int) ([]model.SleepSession, error)

	// Analyze aggregates the past days of sessions into a SleepAnalysis.
	// A window with no sessions yields the zero-value analysis.
	Analyze(ctx context.Context, userID string, days int) (*model.SleepAnalysis, error)
}

type sleepService struct {
	sessions repository.SleepRepository
	users    repository.UserRepository
}

// NewSleepService constructs a new SleepService.
func NewSleepService(sessions repository.SleepRepository, users repository.UserRepository) SleepService {
	return &sleepService{sessions: sessions, users: users}
}

func (s *sleepService) LogSession(ctx context.Context, userID string, in LogSleepInput) (*model.SleepSession, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if in.BedTime.IsZero() || in.WakeTime.IsZero() || !in.WakeTime.After(in.BedTime) {
		return nil, ErrInvalidSession
	}
	if in.Quality < 1 || in.Quality > 5 || in.Awakenings < 0 {
		return nil, ErrInvalidSession
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	duration := int(in.WakeTime.Sub(in.BedTime).Minutes())
	asleep := duration - in.Awakenings*awakeningPenaltyMin
	if asleep < 0 {
		asleep = 0
	}
	var efficiency float64
	if duration > 0 {
		efficiency = float64(asleep) / float64(duration)
	}

	session := &model.SleepSession{
		ID:          uuid.New().String(),
		UserID:      userID,
		BedTime:     in.BedTime,
		WakeTime:    in.WakeTime,
		Quality:     in.Quality,
		Awakenings:  in.Awakenings,
		DurationMin: duration,
		Efficiency:  efficiency,
	}
	return s.sessions.Create(ctx, session)
}

func (s *sleepService) Recent(ctx context.Context, userID string, days int) ([]model.SleepSession, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	return s.sessions.ListSince(ctx, userID, windowStart(days))
}

func (s *sleepService) Analyze(ctx context.Context, userID string, days int) (*model.SleepAnalysis, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	sessions, err := s.sessions.ListSince(ctx, userID, windowStart(days))
	if err != nil {
		return nil, err
	}
	analysis := AnalyzeSessions(sessions, u.SleepTargetMin)
	return &analysis, nil
}

// AnalyzeSessions aggregates sessions into a SleepAnalysis against the given
// nightly target. An empty slice yields the zero value; no division happens
// on a zero count.
func AnalyzeSessions(sessions []model.SleepSession, targetMin int) model.SleepAnalysis {
	n := len(sessions)
	if n == 0 {
		return model.SleepAnalysis{}
	}

	var totalDuration, totalQuality int
	var totalEfficiency float64
	var debt int
	bedMinutes := make([]float64, 0, n)
	for _, s := range sessions {
		totalDuration += s.DurationMin
		totalQuality += s.Quality
		totalEfficiency += s.Efficiency
		if short := targetMin - s.DurationMin; short > 0 {
			debt += short
		}
		bt := s.BedTime.UTC()
		bedMinutes = append(bedMinutes, float64(bt.Hour()*60+bt.Minute()))
	}

	return model.SleepAnalysis{
		Records:          n,
		AvgDurationMin:   float64(totalDuration) / float64(n),
		AvgQuality:       float64(totalQuality) / float64(n),
		AvgEfficiency:    totalEfficiency / float64(n),
		SleepDebtMin:     debt,
		ConsistencyScore: consistencyScore(bedMinutes),
	}
}

// consistencyScore maps the standard deviation of bedtime minutes-of-day to a
// 0-100 score: zero spread scores 100 and each minute of deviation costs one
// point, clamped at zero. Bedtimes are compared on a circular clock so 23:50
// and 00:10 count as 20 minutes apart, not 23 hours.
func consistencyScore(bedMinutes []float64) int {
	n := len(bedMinutes)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 100
	}

	// Circular mean over the 24h clock.
	const day = 24 * 60
	var sinSum, cosSum float64
	for _, m := range bedMinutes {
		rad := m / day * 2 * math.Pi
		sinSum += math.Sin(rad)
		cosSum += math.Cos(rad)
	}
	meanRad := math.Atan2(sinSum/float64(n), cosSum/float64(n))
	mean := meanRad / (2 * math.Pi) * day
	if mean < 0 {
		mean += day
	}

	var sqSum float64
	for _, m := range bedMinutes {
		d := math.Abs(m - mean)
		if d > day/2 {
			d = day - d
		}
		sqSum += d * d
	}
	stddev := math.Sqrt(sqSum / float64(n))

	score := 100 - int(math.Round(stddev))
	if score < 0 {
		score = 0
	}
	return score
}

func windowStart(days int) time.Time {
	if days <= 0 {
		days = 7
	}
	return time.Now().UTC().AddDate(0, 0, -days)
}
