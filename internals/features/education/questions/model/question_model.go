package model

import (
	"errors"
	"strings"
)

// Translation override per bahasa (saat ini hanya "hi").
type Translation struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type Translations struct {
	Hi *Translation `json:"hi,omitempty"`
}

// Question adalah record soal — base (seed), hasil expand, atau custom.
type Question struct {
	ID           string        `json:"id"`
	Question     string        `json:"question"`
	Options      []string      `json:"options"`
	AnswerIndex  int           `json:"answerIndex"`
	Subject      string        `json:"subject,omitempty"`
	Translations *Translations `json:"translations,omitempty"`
}

const DefaultSubject = "General"

// SubjectOrDefault: subject kosong dihitung "General".
func (q Question) SubjectOrDefault() string {
	if strings.TrimSpace(q.Subject) == "" {
		return DefaultSubject
	}
	return q.Subject
}

// Validate mirror invariant store: 4 opsi, 0 ≤ answerIndex < len(options).
func (q Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("question is required")
	}
	if len(q.Options) != 4 {
		return errors.New("exactly 4 options are required")
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return errors.New("options must not be empty")
		}
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return errors.New("answerIndex out of range")
	}
	return nil
}

// Localized substitusi teks+opsi dengan translasi tersimpan kalau ada.
// Bahasa tanpa translasi → record asli apa adanya.
func (q Question) Localized(lang string) Question {
	if lang != "hi" || q.Translations == nil || q.Translations.Hi == nil {
		return q
	}
	hi := q.Translations.Hi
	if hi.Question == "" || len(hi.Options) == 0 {
		return q
	}
	out := q
	out.Question = hi.Question
	out.Options = hi.Options
	return out
}
