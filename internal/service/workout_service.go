package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alcyxob/workout-tracker/internal/cache"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/stats"
	"alcyxob/workout-tracker/internal/workoutlog"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=../api/mocks_test.go -package=api_test alcyxob/workout-tracker/internal/service AuthService,ProfileService,WorkoutService

var (
	ErrWorkoutStringMissing = errors.New("workout string is missing")
	// ErrStoreFailure wraps any error returned by the workout store.
	ErrStoreFailure = errors.New("workout store failure")
)

// DayWorkouts is a single day's workouts and their calorie total.
type DayWorkouts struct {
	Workouts      []domain.Workout `json:"todaysWorkouts"`
	TotalCalories float64          `json:"totalCaloriesBurnt"`
	Date          string           `json:"date"`
}

type WorkoutService interface {
	// AddWorkouts parses raw and stores one workout per entry. A log with
	// any invalid entry stores nothing. Stores are independent: if one
	// fails, the workouts saved before it stay saved.
	AddWorkouts(ctx context.Context, userID primitive.ObjectID, raw string) ([]domain.Workout, error)
	// Dashboard summarizes the day of ref and the week ending on it.
	Dashboard(ctx context.Context, userID primitive.ObjectID, ref time.Time) (*stats.Dashboard, error)
	// WorkoutsByDate lists the workouts of date's day.
	WorkoutsByDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*DayWorkouts, error)
	// Location is the zone day boundaries are computed in.
	Location() *time.Location
}

type workoutService struct {
	userRepo    repository.UserRepository
	workoutRepo repository.WorkoutRepository
	cache       cache.DashboardCache
	metrics     *metrics.Manager
	loc         *time.Location
}

func NewWorkoutService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	dashboardCache cache.DashboardCache,
	metricsManager *metrics.Manager,
	loc *time.Location,
) WorkoutService {
	if loc == nil {
		loc = time.Local
	}
	if dashboardCache == nil {
		dashboardCache = cache.Noop{}
	}
	return &workoutService{
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		cache:       dashboardCache,
		metrics:     metricsManager,
		loc:         loc,
	}
}

func (s *workoutService) Location() *time.Location {
	return s.loc
}

func (s *workoutService) AddWorkouts(ctx context.Context, userID primitive.ObjectID, raw string) ([]domain.Workout, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrWorkoutStringMissing
	}

	entries, err := workoutlog.Parse(raw)
	if err != nil {
		s.countRejected(err)
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrWorkoutStringMissing
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	created := make([]domain.Workout, 0, len(entries))
	defer func() {
		if len(created) > 0 {
			s.cache.Invalidate(userID.Hex())
		}
	}()

	for i, entry := range entries {
		workout := domain.NewWorkout(userID, entry, now)
		id, err := s.workoutRepo.Create(ctx, workout)
		if err != nil {
			log.Errorf("add workouts for %s: saved %d of %d: %v", userID.Hex(), i, len(entries), err)
			return created, fmt.Errorf("%w: saved %d of %d workouts: %w", ErrStoreFailure, i, len(entries), err)
		}
		workout.ID = id
		created = append(created, *workout)
		s.metrics.CounterWorkoutsLogged.Inc()
	}

	return created, nil
}

func (s *workoutService) Dashboard(ctx context.Context, userID primitive.ObjectID, ref time.Time) (*stats.Dashboard, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	day := ref.In(s.loc).Format(time.DateOnly)
	if dashboard, ok := s.cache.Get(userID.Hex(), day); ok {
		s.metrics.CounterDashboardCached.WithLabelValues("hit").Inc()
		return dashboard, nil
	}
	s.metrics.CounterDashboardCached.WithLabelValues("miss").Inc()

	dayStart, dayEnd := stats.DayBounds(ref, s.loc)
	count, err := s.workoutRepo.CountByUserAndRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: count today's workouts: %w", ErrStoreFailure, err)
	}

	var today []domain.Workout
	if count > 0 {
		today, err = s.workoutRepo.ListByUserAndRange(ctx, userID, dayStart, dayEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: list today's workouts: %w", ErrStoreFailure, err)
		}
	}

	weekStart, weekEnd := stats.SeriesBounds(ref, s.loc)
	week, err := s.workoutRepo.ListByUserAndRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: list week's workouts: %w", ErrStoreFailure, err)
	}

	dashboard := stats.BuildDashboard(today, week, ref, s.loc)
	s.cache.Set(userID.Hex(), &dashboard)
	return &dashboard, nil
}

func (s *workoutService) WorkoutsByDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*DayWorkouts, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	start, end := stats.DayBounds(date, s.loc)
	workouts, err := s.workoutRepo.ListByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: list workouts: %w", ErrStoreFailure, err)
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}

	return &DayWorkouts{
		Workouts:      workouts,
		TotalCalories: stats.Summarize(workouts).TotalCalories,
		Date:          start.Format(time.DateOnly),
	}, nil
}

func (s *workoutService) ensureUser(ctx context.Context, userID primitive.ObjectID) error {
	if userID == primitive.NilObjectID {
		return ErrUserNotFound
	}
	_, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	return nil
}

func (s *workoutService) countRejected(err error) {
	kind := "unknown"
	var parseErr *workoutlog.ParseError
	if errors.As(err, &parseErr) {
		kind = string(parseErr.Kind)
	}
	s.metrics.CounterLogsRejected.WithLabelValues(kind).Inc()
}
