package workoutlog

// CalorieFactor is the fixed calibration constant of the estimate. The
// estimate is a linear proxy, not a physiological model.
const CalorieFactor = 0.1

// EstimateCalories returns sets * reps * weight * CalorieFactor.
func EstimateCalories(sets, reps int, weight float64) float64 {
	return float64(sets) * float64(reps) * weight * CalorieFactor
}
