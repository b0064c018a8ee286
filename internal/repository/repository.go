package repository

import (
	"context"
	"time"

	"alcyxob/workout-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=../service/mocks_test.go -package=service_test

var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	SetImg(ctx context.Context, id primitive.ObjectID, img string) error
}

// WorkoutRepository stores parsed workouts. Ranges are [start, end).
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	ListByUserAndRange(ctx context.Context, userID primitive.ObjectID, start, end time.Time) ([]domain.Workout, error)
	CountByUserAndRange(ctx context.Context, userID primitive.ObjectID, start, end time.Time) (int64, error)
}
