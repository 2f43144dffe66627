package rest

import (
	"net/http"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	StudyPlan *StudyPlanHandler
	Document  *DocumentHandler
	Flashcard *FlashcardHandler
	Quiz      *QuizHandler
	Session   *SessionHandler
	Progress  *ProgressHandler
}

// NewRouter registers every API route on a ServeMux. authLimit wraps the
// unauthenticated auth endpoints; it may be nil.
func NewRouter(h Handlers, authLimit func(http.Handler) http.Handler) *http.ServeMux {
	if authLimit == nil {
		authLimit = func(next http.Handler) http.Handler { return next }
	}
	limited := func(fn http.HandlerFunc) http.Handler { return authLimit(fn) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// auth
	mux.Handle("POST /auth/register", limited(h.Auth.Register))
	mux.Handle("POST /auth/login", limited(h.Auth.Login))
	mux.Handle("POST /auth/refresh", limited(h.Auth.Refresh))
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)
	mux.Handle("POST /auth/forgot-password", limited(h.Auth.ForgotPassword))
	mux.Handle("POST /auth/reset-password", limited(h.Auth.ResetPassword))

	// study plans
	mux.HandleFunc("GET /study-plans", h.StudyPlan.ListPlans)
	mux.HandleFunc("POST /study-plans", h.StudyPlan.CreatePlan)
	mux.HandleFunc("GET /study-plans/{planID}", h.StudyPlan.GetPlan)
	mux.HandleFunc("PATCH /study-plans/{planID}", h.StudyPlan.RenamePlan)
	mux.HandleFunc("DELETE /study-plans/{planID}", h.StudyPlan.DeletePlan)
	mux.HandleFunc("GET /study-plans/{planID}/tasks", h.StudyPlan.ListTasks)
	mux.HandleFunc("POST /study-plans/{planID}/tasks", h.StudyPlan.AddTask)
	mux.HandleFunc("PATCH /study-plans/{planID}/tasks/{taskID}", h.StudyPlan.UpdateTask)
	mux.HandleFunc("DELETE /study-plans/{planID}/tasks/{taskID}", h.StudyPlan.DeleteTask)

	// documents
	mux.HandleFunc("POST /home/upload-pdf", h.Document.Upload)
	mux.HandleFunc("GET /home/pdfs", h.Document.ListDocuments)
	mux.HandleFunc("GET /home/pdfs/{id}", h.Document.GetDocument)
	mux.HandleFunc("DELETE /home/pdfs/{id}", h.Document.DeleteDocument)

	// flashcards
	mux.HandleFunc("POST /home/flashcards/generate", h.Flashcard.GenerateDeck)
	mux.HandleFunc("GET /home/flashcards/decks", h.Flashcard.ListDecks)
	mux.HandleFunc("GET /home/flashcards/decks/{deckID}", h.Flashcard.GetDeck)
	mux.HandleFunc("PATCH /home/flashcards/decks/{deckID}", h.Flashcard.RenameDeck)
	mux.HandleFunc("DELETE /home/flashcards/decks/{deckID}", h.Flashcard.DeleteDeck)
	mux.HandleFunc("POST /home/flashcards/decks/{deckID}/cards", h.Flashcard.AddCard)
	mux.HandleFunc("PATCH /home/flashcards/decks/{deckID}/cards/{cardID}", h.Flashcard.UpdateCard)
	mux.HandleFunc("DELETE /home/flashcards/decks/{deckID}/cards/{cardID}", h.Flashcard.DeleteCard)

	// quizzes
	mux.HandleFunc("POST /quizzes/generate", h.Quiz.GenerateQuiz)
	mux.HandleFunc("GET /quizzes", h.Quiz.ListQuizzes)
	mux.HandleFunc("GET /quizzes/results", h.Quiz.ListResults)
	mux.HandleFunc("GET /quizzes/{quizID}", h.Quiz.GetQuiz)
	mux.HandleFunc("DELETE /quizzes/{quizID}", h.Quiz.DeleteQuiz)
	mux.HandleFunc("POST /quizzes/{quizID}/results", h.Quiz.SubmitResult)

	// study sessions
	mux.HandleFunc("POST /study-sessions", h.Session.StartSession)
	mux.HandleFunc("GET /study-sessions", h.Session.ListSessions)
	mux.HandleFunc("GET /study-sessions/{id}", h.Session.GetSession)
	mux.HandleFunc("DELETE /study-sessions/{id}", h.Session.DeleteSession)
	mux.HandleFunc("POST /study-sessions/{id}/pause", h.Session.PauseSession)
	mux.HandleFunc("POST /study-sessions/{id}/resume", h.Session.ResumeSession)
	mux.HandleFunc("POST /study-sessions/{id}/finish", h.Session.FinishSession)

	// progress
	mux.HandleFunc("GET /progress", h.Progress.Progress)
	mux.HandleFunc("POST /progress/snapshot", h.Progress.Snapshot)
	mux.HandleFunc("GET /progress/history", h.Progress.History)

	return mux
}
