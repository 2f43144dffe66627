package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedStudent inserts a student with a throwaway password hash.
func SeedStudent(t *testing.T, pool *pgxpool.Pool) domain.Student {
	t.Helper()

	suffix := uniqueSuffix()
	s := domain.Student{
		Email:        "student-" + suffix + "@example.com",
		PasswordHash: "seed-password-hash",
		FirstName:    "طالب",
		LastName:     "Test " + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO students (email, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		s.Email, s.PasswordHash, s.FirstName, s.LastName,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedStudent: %v", err)
	}
	return s
}

// SeedPlan inserts an empty study plan owned by ownerID.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.StudyPlan {
	t.Helper()

	p := domain.StudyPlan{OwnerID: ownerID, Title: "خطة " + uniqueSuffix(), Status: domain.PlanStatusNotStarted}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO study_plans (owner_id, title) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.OwnerID, p.Title,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan: %v", err)
	}
	return p
}

// SeedDocument inserts a document with the given text.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, text string) domain.Document {
	t.Helper()

	d := domain.Document{
		OwnerID:      ownerID,
		OriginalName: "lecture-" + uniqueSuffix() + ".pdf",
		SizeBytes:    int64(len(text)) + 100,
		PageCount:    1,
		Text:         text,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO documents (owner_id, original_name, size_bytes, page_count, text)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		d.OwnerID, d.OriginalName, d.SizeBytes, d.PageCount, d.Text,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}
	return d
}

// SeedQuiz inserts a quiz with n two-option questions whose answer is option 0.
func SeedQuiz(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, documentID *uuid.UUID, n int) domain.Quiz {
	t.Helper()

	q := domain.Quiz{
		OwnerID:    ownerID,
		DocumentID: documentID,
		Level:      domain.QuizLevelEasy,
		Title:      "Quiz " + uniqueSuffix(),
		Source:     domain.QuizSourceLLM,
	}
	for i := range n {
		q.Questions = append(q.Questions, domain.QuizQuestion{
			Question:    "Q" + string(rune('A'+i)),
			Options:     []string{"yes", "no"},
			AnswerIndex: 0,
		})
	}
	stored := make([]map[string]any, len(q.Questions))
	for i, qq := range q.Questions {
		stored[i] = map[string]any{
			"question":     qq.Question,
			"options":      qq.Options,
			"answer_index": qq.AnswerIndex,
		}
	}
	questions, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("testhelper: SeedQuiz marshal: %v", err)
	}

	err = pool.QueryRow(context.Background(),
		`INSERT INTO quizzes (owner_id, document_id, level, title, questions, source)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		q.OwnerID, q.DocumentID, string(q.Level), q.Title, questions, string(q.Source),
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedQuiz: %v", err)
	}
	return q
}

// Today returns today's date truncated to midnight UTC.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
