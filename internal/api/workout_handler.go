package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/workoutlog"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type AddWorkoutRequest struct {
	WorkoutString string `json:"workoutString"`
}

type AddWorkoutResponse struct {
	Message  string           `json:"message"`
	Workouts []domain.Workout `json:"workouts"`
}

// AddWorkout parses the submitted log and stores its entries.
func (h *WorkoutHandler) AddWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	var req AddWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	workouts, err := h.workoutService.AddWorkouts(c.Request.Context(), userID, req.WorkoutString)
	if errors.Is(err, service.ErrStoreFailure) {
		// entries after the saved ones can be resubmitted
		log.Errorf("add workouts for %s: %v", userID.Hex(), err)
		if workouts == nil {
			workouts = []domain.Workout{}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":    "Failed to save all workouts.",
			"saved":    len(workouts),
			"workouts": workouts,
		})
		return
	}
	if err != nil {
		h.workoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AddWorkoutResponse{
		Message:  "Workouts added successfully",
		Workouts: workouts,
	})
}

// Dashboard returns today's totals, the category breakdown and the weekly series.
func (h *WorkoutHandler) Dashboard(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	dashboard, err := h.workoutService.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		h.workoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// WorkoutsByDate lists the workouts of ?date=YYYY-MM-DD, today when absent.
func (h *WorkoutHandler) WorkoutsByDate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		date, err = time.ParseInLocation(dateLayout, raw, h.workoutService.Location())
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
			return
		}
	}

	day, err := h.workoutService.WorkoutsByDate(c.Request.Context(), userID, date)
	if err != nil {
		h.workoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *WorkoutHandler) workoutError(c *gin.Context, err error) {
	var parseErr *workoutlog.ParseError
	switch {
	case errors.As(err, &parseErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid workout string format",
			"detail": parseErr.Error(),
			"kind":   parseErr.Kind,
			"entry":  parseErr.Entry,
		})
	case errors.Is(err, workoutlog.ErrInvalidFormat):
		abortWithError(c, http.StatusBadRequest, "Invalid workout string format")
	case errors.Is(err, service.ErrWorkoutStringMissing):
		abortWithError(c, http.StatusBadRequest, "Workout string is missing")
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		log.Errorf("workout request: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to process workouts.")
	}
}
