package llm

import (
	"fmt"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const flashcardSystemPrompt = `You are an assistant that writes study flashcards for university students.
Write in the language of the source text (usually Arabic). Output ONLY valid JSON, no markdown.`

const quizSystemPrompt = `You are an assistant that writes multiple-choice exam questions for university students.
Write in the language of the source text (usually Arabic). Output ONLY valid JSON, no markdown.`

func buildFlashcardPrompt(text string, count int) string {
	return fmt.Sprintf(`Create %d flashcards that cover the most important ideas of the text below.

Output a JSON object matching this exact schema:
{
  "cards": [
    {"question": "<short question>", "answer": "<concise answer>", "hint": "<optional hint or empty>", "tags": ["<topic>"]}
  ]
}

Rules:
- One idea per card; answers at most two sentences
- Do not invent facts that are not in the text
- Use 1-3 short topic tags per card

Text:
"""
%s
"""`, count, text)
}

var levelGuidance = map[domain.QuizLevel]string{
	domain.QuizLevelEasy:   "recall of definitions and direct facts stated in the text",
	domain.QuizLevelMedium: "understanding and applying the concepts of the text",
	domain.QuizLevelHard:   "analysis, comparison and multi-step reasoning about the text",
}

func buildQuizPrompt(text string, level domain.QuizLevel, count int) string {
	return fmt.Sprintf(`Create %d multiple-choice questions at %s difficulty, testing %s.

Output a JSON object matching this exact schema:
{
  "questions": [
    {"question": "<question>", "options": ["<a>", "<b>", "<c>", "<d>"], "answerIndex": <0-based index of the correct option>, "explanation": "<why the answer is correct>"}
  ]
}

Rules:
- Exactly four options per question, one correct
- Vary the position of the correct option
- Do not invent facts that are not in the text

Text:
"""
%s
"""`, count, level, levelGuidance[level], text)
}
