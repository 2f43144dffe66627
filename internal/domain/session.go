package domain

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is a study timer with accumulated study and break time.
// SegmentStartedAt marks the beginning of the currently running segment
// (study when Active, break when OnBreak); it is nil once completed.
type StudySession struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Title             string
	Status            SessionStatus
	TotalStudySeconds int64
	TotalBreakSeconds int64
	SegmentStartedAt  *time.Time
	StartedAt         time.Time
	EndedAt           *time.Time
}

func (s *StudySession) Owner() uuid.UUID { return s.OwnerID }

// SessionState identifies the timer state a transition starts from. A stored
// session still in this state has not been changed by anyone else.
type SessionState struct {
	Status           SessionStatus
	SegmentStartedAt *time.Time
}

// State returns the current timer state.
func (s *StudySession) State() SessionState {
	return SessionState{Status: s.Status, SegmentStartedAt: s.SegmentStartedAt}
}

// closeSegment folds the running segment into the matching total.
func (s *StudySession) closeSegment(now time.Time) {
	if s.SegmentStartedAt == nil {
		return
	}
	elapsed := int64(now.Sub(*s.SegmentStartedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	switch s.Status {
	case SessionStatusActive:
		s.TotalStudySeconds += elapsed
	case SessionStatusOnBreak:
		s.TotalBreakSeconds += elapsed
	}
	s.SegmentStartedAt = nil
}

// Pause moves an active session to a break.
func (s *StudySession) Pause(now time.Time) error {
	if s.Status != SessionStatusActive {
		return ErrConflict
	}
	s.closeSegment(now)
	s.Status = SessionStatusOnBreak
	s.SegmentStartedAt = &now
	return nil
}

// Resume ends a break and continues studying.
func (s *StudySession) Resume(now time.Time) error {
	if s.Status != SessionStatusOnBreak {
		return ErrConflict
	}
	s.closeSegment(now)
	s.Status = SessionStatusActive
	s.SegmentStartedAt = &now
	return nil
}

// Finish completes an open session.
func (s *StudySession) Finish(now time.Time) error {
	if !s.Status.IsOpen() {
		return ErrConflict
	}
	s.closeSegment(now)
	s.Status = SessionStatusCompleted
	s.EndedAt = &now
	return nil
}

// TotalsAt returns the study and break seconds including the running segment.
func (s *StudySession) TotalsAt(now time.Time) (study, brk int64) {
	cp := *s
	cp.closeSegment(now)
	return cp.TotalStudySeconds, cp.TotalBreakSeconds
}
