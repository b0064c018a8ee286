package domain

import (
	"time"

	"alcyxob/workout-tracker/internal/workoutlog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is one logged exercise entry owned by a user.
// CaloriesBurned is always derived from Sets, Reps and Weight; workouts are
// never updated, a correction is a new workout.
type Workout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"user"`
	Category       string             `bson:"category" json:"category"`
	WorkoutName    string             `bson:"workoutName" json:"workoutName"`
	Sets           int                `bson:"sets" json:"sets"`
	Reps           int                `bson:"reps" json:"reps"`
	Weight         float64            `bson:"weight" json:"weight"` // kg
	CaloriesBurned float64            `bson:"caloriesBurned" json:"caloriesBurned"`
	Date           time.Time          `bson:"date" json:"date"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewWorkout builds a workout for userID from a parsed log entry.
// A zero date means "now".
func NewWorkout(userID primitive.ObjectID, entry workoutlog.Entry, date time.Time) *Workout {
	if date.IsZero() {
		date = time.Now()
	}
	return &Workout{
		UserID:         userID,
		Category:       entry.Category,
		WorkoutName:    entry.WorkoutName,
		Sets:           entry.Sets,
		Reps:           entry.Reps,
		Weight:         entry.Weight,
		CaloriesBurned: workoutlog.EstimateCalories(entry.Sets, entry.Reps, entry.Weight),
		Date:           date,
	}
}
