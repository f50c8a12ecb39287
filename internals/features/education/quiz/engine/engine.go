package engine

import (
	"rupeess_backend/internals/features/education/questions/model"
)

// Phase dari state machine quiz.
type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhaseActive   Phase = "active"
	PhaseFinished Phase = "finished"
)

// Skor per outcome.
const (
	ScoreCorrect = 4
	ScoreWrong   = -1
)

// Config bertahan melewati Restart.
type Config struct {
	Subject         string
	QuestionCount   int
	TimePerQuestion int // detik; 0 = tanpa countdown per soal
	SkipBudget      int
}

// AnswerRecord adalah satu baris history: index pilihan (nil kalau
// skip/timeout), benar/salah, dan waktu yang dihabiskan di soal itu.
type AnswerRecord struct {
	QuestionID  string `json:"question_id"`
	ChosenIndex *int   `json:"chosen_index"`
	Correct     bool   `json:"correct"`
	TimeSpent   int    `json:"time_spent"`
}

// State adalah tagged union Loading | Active | Finished.
// Field Active hanya berarti saat Phase == PhaseActive.
type State struct {
	Phase     Phase
	Config    Config
	Questions []model.Question

	Index         int
	Score         int
	AnsweredCount int
	TimeSeconds   int // total elapsed
	QuestionLeft  int // countdown per soal
	questionSpent int

	FiftyUsed     bool
	HintUsed      bool
	HiddenOptions []int // hasil fifty-fifty, index opsi yang disembunyikan
	HintIndex     *int  // hasil hint, index opsi benar
	SkipLeft      int

	History []AnswerRecord
}

// =======================
// Events
// =======================

type Event interface{ isEvent() }

type Loaded struct{ Questions []model.Question }
type Answer struct{ Index int }
type Skip struct{}
type Timeout struct{}
type FiftyFifty struct{}
type Hint struct{}
type Tick struct{}
type Restart struct{}

func (Loaded) isEvent()     {}
func (Answer) isEvent()     {}
func (Skip) isEvent()       {}
func (Timeout) isEvent()    {}
func (FiftyFifty) isEvent() {}
func (Hint) isEvent()       {}
func (Tick) isEvent()       {}
func (Restart) isEvent()    {}

// NewState membuat state awal (Loading) dengan config yang diberikan.
func NewState(cfg Config) State {
	return State{
		Phase:    PhaseLoading,
		Config:   cfg,
		SkipLeft: cfg.SkipBudget,
	}
}

// Reduce adalah pure reducer: (state, event) → state.
// Event yang tidak legal di phase sekarang adalah no-op.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case Loaded:
		if s.Phase != PhaseLoading {
			return s
		}
		s.Questions = e.Questions
		if len(s.Questions) == 0 {
			return s
		}
		s.Phase = PhaseActive
		s.QuestionLeft = s.Config.TimePerQuestion
		return s

	case Answer:
		if s.Phase != PhaseActive {
			return s
		}
		q := s.Questions[s.Index]
		if e.Index < 0 || e.Index >= len(q.Options) {
			return s
		}
		chosen := e.Index
		correct := chosen == q.AnswerIndex
		if correct {
			s.Score += ScoreCorrect
		} else {
			s.Score += ScoreWrong
		}
		s.AnsweredCount++
		s.History = append(s.History, AnswerRecord{
			QuestionID:  q.ID,
			ChosenIndex: &chosen,
			Correct:     correct,
			TimeSpent:   s.questionSpent,
		})
		return advance(s)

	case Skip:
		if s.Phase != PhaseActive || s.SkipLeft <= 0 {
			return s
		}
		s.SkipLeft--
		s.History = append(s.History, AnswerRecord{
			QuestionID: s.Questions[s.Index].ID,
			TimeSpent:  s.questionSpent,
		})
		return advance(s)

	case Timeout:
		// Sama dengan skip tapi TIDAK memakan skip budget:
		// countdown habis bukan aksi pemain.
		if s.Phase != PhaseActive {
			return s
		}
		s.History = append(s.History, AnswerRecord{
			QuestionID: s.Questions[s.Index].ID,
			TimeSpent:  s.questionSpent,
		})
		return advance(s)

	case FiftyFifty:
		if s.Phase != PhaseActive || s.FiftyUsed {
			return s
		}
		s.FiftyUsed = true
		s.HiddenOptions = pickHidden(s.Questions[s.Index])
		return s

	case Hint:
		if s.Phase != PhaseActive || s.HintUsed {
			return s
		}
		s.HintUsed = true
		idx := s.Questions[s.Index].AnswerIndex
		s.HintIndex = &idx
		return s

	case Tick:
		if s.Phase != PhaseActive {
			return s
		}
		s.TimeSeconds++
		s.questionSpent++
		if s.Config.TimePerQuestion > 0 {
			s.QuestionLeft--
			if s.QuestionLeft <= 0 {
				return Reduce(s, Timeout{})
			}
		}
		return s

	case Restart:
		if s.Phase != PhaseFinished {
			return s
		}
		next := NewState(s.Config)
		next.Questions = s.Questions
		next.Phase = PhaseActive
		next.QuestionLeft = s.Config.TimePerQuestion
		return next
	}
	return s
}

// advance pindah ke soal berikut atau Finished, reset flag per soal.
func advance(s State) State {
	if s.Index == len(s.Questions)-1 {
		s.Phase = PhaseFinished
		return s
	}
	s.Index++
	s.FiftyUsed = false
	s.HintUsed = false
	s.HiddenOptions = nil
	s.HintIndex = nil
	s.questionSpent = 0
	s.QuestionLeft = s.Config.TimePerQuestion
	return s
}

// pickHidden sembunyikan dua distractor ber-index tertinggi:
// deterministik, opsi benar + satu distractor tetap tampil.
func pickHidden(q model.Question) []int {
	var hidden []int
	for i := len(q.Options) - 1; i >= 0 && len(hidden) < 2; i-- {
		if i != q.AnswerIndex {
			hidden = append(hidden, i)
		}
	}
	return hidden
}
