package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Weights of each category in the overall progress percentage.
const (
	ProgressWeightTasks    = 0.4
	ProgressWeightSessions = 0.3
	ProgressWeightQuizzes  = 0.3
)

// ProgressCounts holds the raw numbers progress is computed from.
type ProgressCounts struct {
	TotalTasks        int
	CompletedTasks    int
	TotalSessions     int
	CompletedSessions int
	QuizResults       int
	QuizScoreSum      float64 // sum of score/total over all results
}

// Progress is the computed progress of a student.
type Progress struct {
	Percent         int
	TasksPercent    float64
	SessionsPercent float64
	QuizzesPercent  float64
	Counts          ProgressCounts
}

// ComputeProgress applies the 40/30/30 weighting. Empty categories contribute 0.
func ComputeProgress(c ProgressCounts) Progress {
	tasks := ratio(float64(c.CompletedTasks), float64(c.TotalTasks))
	sessions := ratio(float64(c.CompletedSessions), float64(c.TotalSessions))
	quizzes := ratio(c.QuizScoreSum, float64(c.QuizResults))

	total := ProgressWeightTasks*tasks + ProgressWeightSessions*sessions + ProgressWeightQuizzes*quizzes
	percent := int(math.Round(total * 100))
	percent = max(0, min(100, percent))

	return Progress{
		Percent:         percent,
		TasksPercent:    round2(tasks * 100),
		SessionsPercent: round2(sessions * 100),
		QuizzesPercent:  round2(quizzes * 100),
		Counts:          c,
	}
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	r := num / den
	return max(0, min(1, r))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ProgressSnapshot is the stored daily progress of a student.
type ProgressSnapshot struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Date            time.Time
	Percent         int
	TasksPercent    float64
	SessionsPercent float64
	QuizzesPercent  float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
