package dto

import (
	questionModel "rupeess_backend/internals/features/education/questions/model"
	"rupeess_backend/internals/features/education/quiz/engine"
)

type StartQuizRequest struct {
	Subject         string `json:"subject"`
	QuestionCount   int    `json:"question_count" validate:"omitempty,min=1,max=100"`
	TimePerQuestion int    `json:"time_per_question" validate:"omitempty,min=5,max=600"`
	Lang            string `json:"lang"`
}

type AnswerRequest struct {
	Index *int `json:"index" validate:"required,min=0,max=3"`
}

// QuestionView: soal tanpa answerIndex supaya jawaban tidak bocor ke client.
type QuestionView struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Subject  string   `json:"subject,omitempty"`
}

type StateView struct {
	SessionID     string                `json:"session_id"`
	Phase         string                `json:"phase"`
	Index         int                   `json:"index"`
	TotalCount    int                   `json:"total_count"`
	Score         int                   `json:"score"`
	AnsweredCount int                   `json:"answered_count"`
	TimeSeconds   int                   `json:"time_seconds"`
	QuestionLeft  int                   `json:"question_left"`
	SkipLeft      int                   `json:"skip_left"`
	FiftyUsed     bool                  `json:"fifty_used"`
	HintUsed      bool                  `json:"hint_used"`
	HiddenOptions []int                 `json:"hidden_options,omitempty"`
	HintIndex     *int                  `json:"hint_index,omitempty"`
	Question      *QuestionView         `json:"question,omitempty"`
	History       []engine.AnswerRecord `json:"history,omitempty"`
}

func toQuestionView(q questionModel.Question) *QuestionView {
	return &QuestionView{
		ID:       q.ID,
		Question: q.Question,
		Options:  q.Options,
		Subject:  q.Subject,
	}
}

// ToStateView proyeksikan state engine ke response API.
// History hanya dikirim setelah Finished.
func ToStateView(sessionID string, s engine.State) StateView {
	view := StateView{
		SessionID:     sessionID,
		Phase:         string(s.Phase),
		Index:         s.Index,
		TotalCount:    len(s.Questions),
		Score:         s.Score,
		AnsweredCount: s.AnsweredCount,
		TimeSeconds:   s.TimeSeconds,
		QuestionLeft:  s.QuestionLeft,
		SkipLeft:      s.SkipLeft,
		FiftyUsed:     s.FiftyUsed,
		HintUsed:      s.HintUsed,
		HiddenOptions: s.HiddenOptions,
		HintIndex:     s.HintIndex,
	}
	switch s.Phase {
	case engine.PhaseActive:
		view.Question = toQuestionView(s.Questions[s.Index])
	case engine.PhaseFinished:
		view.History = s.History
	}
	return view
}
