package domain

import "strings"

// TaskPriority is the urgency of a task inside a study plan.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

var priorityLabels = map[TaskPriority]string{
	PriorityHigh:   "عالية",
	PriorityMedium: "متوسطة",
	PriorityLow:    "منخفضة",
}

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// Label returns the Arabic label shown by the client.
func (p TaskPriority) Label() string { return priorityLabels[p] }

// ParsePriority accepts either the code ("high") or the Arabic label ("عالية").
func ParsePriority(s string) (TaskPriority, bool) {
	s = strings.TrimSpace(s)
	if p := TaskPriority(strings.ToLower(s)); p.IsValid() {
		return p, true
	}
	for p, label := range priorityLabels {
		if label == s {
			return p, true
		}
	}
	return "", false
}

// TaskStatus is derived from the completed flag and the deadline.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusOverdue   TaskStatus = "overdue"
)

func (s TaskStatus) String() string { return string(s) }

// PlanStatus is derived from the plan's task counters.
type PlanStatus string

const (
	PlanStatusNotStarted PlanStatus = "not_started"
	PlanStatusInProgress PlanStatus = "in_progress"
	PlanStatusCompleted  PlanStatus = "completed"
)

func (s PlanStatus) String() string { return string(s) }

// SessionStatus is the timer state of a study session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusOnBreak   SessionStatus = "on_break"
	SessionStatusCompleted SessionStatus = "completed"
)

func (s SessionStatus) String() string { return string(s) }

// IsOpen reports whether the session timer is still running.
func (s SessionStatus) IsOpen() bool {
	return s == SessionStatusActive || s == SessionStatusOnBreak
}

// QuizLevel is the requested difficulty of a generated quiz.
type QuizLevel string

const (
	QuizLevelEasy   QuizLevel = "easy"
	QuizLevelMedium QuizLevel = "medium"
	QuizLevelHard   QuizLevel = "hard"
)

func (l QuizLevel) String() string { return string(l) }

func (l QuizLevel) IsValid() bool {
	switch l {
	case QuizLevelEasy, QuizLevelMedium, QuizLevelHard:
		return true
	}
	return false
}

// QuizSource records which generator produced a quiz.
type QuizSource string

const (
	QuizSourceModel QuizSource = "model"
	QuizSourceLLM   QuizSource = "llm"
)

// UploadStage names a step of the PDF ingestion pipeline.
type UploadStage string

const (
	StageValidate UploadStage = "validate"
	StageScan     UploadStage = "scan"
	StageSanitize UploadStage = "sanitize"
	StageExtract  UploadStage = "extract"
	StagePersist  UploadStage = "persist"
	StageForward  UploadStage = "forward"
)

func (s UploadStage) String() string { return string(s) }
