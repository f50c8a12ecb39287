package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rupeess_backend/internals/features/education/questions/model"
)

func testQuestions(n int) []model.Question {
	qs := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, model.Question{
			ID:          string(rune('a' + i)),
			Question:    "q",
			Options:     []string{"w", "x", "y", "z"},
			AnswerIndex: 1,
		})
	}
	return qs
}

func activeState(t *testing.T, n int, cfg Config) State {
	t.Helper()
	s := Reduce(NewState(cfg), Loaded{Questions: testQuestions(n)})
	require.Equal(t, PhaseActive, s.Phase)
	return s
}

func TestLoadedEmptyStaysLoading(t *testing.T) {
	s := Reduce(NewState(Config{SkipBudget: 3}), Loaded{})
	assert.Equal(t, PhaseLoading, s.Phase)
}

func TestScoringCorrectThenWrong(t *testing.T) {
	s := activeState(t, 3, Config{SkipBudget: 3})

	s = Reduce(s, Answer{Index: 1}) // benar: +4
	assert.Equal(t, 4, s.Score)
	s = Reduce(s, Answer{Index: 0}) // salah: -1
	assert.Equal(t, 3, s.Score)
	assert.Equal(t, 2, s.AnsweredCount)
	assert.Equal(t, 2, s.Index)

	require.Len(t, s.History, 2)
	assert.True(t, s.History[0].Correct)
	assert.False(t, s.History[1].Correct)
	require.NotNil(t, s.History[1].ChosenIndex)
	assert.Equal(t, 0, *s.History[1].ChosenIndex)
}

func TestAnswerLastQuestionFinishes(t *testing.T) {
	s := activeState(t, 1, Config{SkipBudget: 3})
	s = Reduce(s, Answer{Index: 1})
	assert.Equal(t, PhaseFinished, s.Phase)

	// finished: answer lagi adalah no-op
	next := Reduce(s, Answer{Index: 1})
	assert.Equal(t, s.Score, next.Score)
	assert.Len(t, next.History, 1)
}

func TestSkipBudgetExhaustionIsNoOp(t *testing.T) {
	s := activeState(t, 10, Config{SkipBudget: 3})

	for i := 0; i < 3; i++ {
		s = Reduce(s, Skip{})
	}
	assert.Equal(t, 0, s.SkipLeft)
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, 0, s.Score)

	// keempat: state tidak berubah
	next := Reduce(s, Skip{})
	assert.Equal(t, s.Index, next.Index)
	assert.Equal(t, 0, next.SkipLeft)
	assert.Len(t, next.History, 3)
}

func TestSkipRecordsNullAnswer(t *testing.T) {
	s := activeState(t, 2, Config{SkipBudget: 1})
	s = Reduce(s, Skip{})
	require.Len(t, s.History, 1)
	assert.Nil(t, s.History[0].ChosenIndex)
	assert.False(t, s.History[0].Correct)
	assert.Equal(t, 0, s.Score)
}

func TestTimeoutDoesNotConsumeSkipBudget(t *testing.T) {
	s := activeState(t, 3, Config{SkipBudget: 3})
	s = Reduce(s, Timeout{})
	assert.Equal(t, 3, s.SkipLeft)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, 0, s.Score)
	require.Len(t, s.History, 1)
	assert.Nil(t, s.History[0].ChosenIndex)
}

func TestTickCountdownTriggersTimeout(t *testing.T) {
	s := activeState(t, 2, Config{SkipBudget: 3, TimePerQuestion: 2})
	assert.Equal(t, 2, s.QuestionLeft)

	s = Reduce(s, Tick{})
	assert.Equal(t, 1, s.QuestionLeft)
	assert.Equal(t, 0, s.Index)

	s = Reduce(s, Tick{}) // countdown habis → auto timeout
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, 2, s.QuestionLeft) // reset untuk soal baru
	assert.Equal(t, 2, s.TimeSeconds)
	require.Len(t, s.History, 1)
}

func TestTickFrozenWhenFinished(t *testing.T) {
	s := activeState(t, 1, Config{SkipBudget: 3})
	s = Reduce(s, Answer{Index: 1})
	require.Equal(t, PhaseFinished, s.Phase)

	next := Reduce(s, Tick{})
	assert.Equal(t, s.TimeSeconds, next.TimeSeconds)
}

func TestFiftyFiftyOncePerQuestion(t *testing.T) {
	s := activeState(t, 2, Config{SkipBudget: 3})
	s = Reduce(s, FiftyFifty{})
	assert.True(t, s.FiftyUsed)
	require.Len(t, s.HiddenOptions, 2)
	for _, idx := range s.HiddenOptions {
		assert.NotEqual(t, 1, idx, "correct option must stay visible")
	}
	assert.Equal(t, 0, s.Score, "lifeline must not affect scoring")

	// pemakaian kedua: no-op
	again := Reduce(s, FiftyFifty{})
	assert.Equal(t, s.HiddenOptions, again.HiddenOptions)

	// soal berikut: flag reset
	s = Reduce(s, Answer{Index: 1})
	assert.False(t, s.FiftyUsed)
	assert.Nil(t, s.HiddenOptions)
}

func TestHintRevealsCorrectIndex(t *testing.T) {
	s := activeState(t, 2, Config{SkipBudget: 3})
	s = Reduce(s, Hint{})
	assert.True(t, s.HintUsed)
	require.NotNil(t, s.HintIndex)
	assert.Equal(t, 1, *s.HintIndex)
	assert.Equal(t, 0, s.Score)
}

func TestRestartOnlyFromFinished(t *testing.T) {
	cfg := Config{Subject: "UPSC - History", QuestionCount: 2, TimePerQuestion: 30, SkipBudget: 3}
	s := activeState(t, 2, cfg)

	// restart saat active: no-op
	mid := Reduce(s, Skip{})
	same := Reduce(mid, Restart{})
	assert.Equal(t, mid.Index, same.Index)

	mid = Reduce(mid, Answer{Index: 0})
	require.Equal(t, PhaseFinished, mid.Phase)

	restarted := Reduce(mid, Restart{})
	assert.Equal(t, PhaseActive, restarted.Phase)
	assert.Equal(t, 0, restarted.Index)
	assert.Equal(t, 0, restarted.Score)
	assert.Equal(t, 0, restarted.TimeSeconds)
	assert.Equal(t, 0, restarted.AnsweredCount)
	assert.False(t, restarted.FiftyUsed)
	assert.False(t, restarted.HintUsed)
	assert.Equal(t, 3, restarted.SkipLeft)
	assert.Empty(t, restarted.History)
	// config quiz (subject, jumlah soal, waktu per soal) dipertahankan
	assert.Equal(t, cfg, restarted.Config)
	assert.Len(t, restarted.Questions, 2)
}
