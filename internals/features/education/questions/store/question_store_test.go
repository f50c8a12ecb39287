package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rupeess_backend/internals/features/education/questions/model"
)

func writeJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	raw, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
}

func newTestStore(t *testing.T, base []model.Question, expand int) *FileStore {
	t.Helper()
	dir := t.TempDir()
	basePath := filepath.Join(dir, "base_questions.json")
	customPath := filepath.Join(dir, "questions.json")
	writeJSON(t, basePath, base)
	writeJSON(t, customPath, []model.Question{})
	return NewFileStore(basePath, customPath, expand)
}

func baseQuestion(id, subject string) model.Question {
	return model.Question{
		ID:          id,
		Question:    "What is the capital of India",
		Options:     []string{"Mumbai", "New Delhi", "Kolkata", "Chennai"},
		AnswerIndex: 1,
		Subject:     subject,
	}
}

func TestExpandProducesExactlyNPerSubject(t *testing.T) {
	base := []model.Question{
		baseQuestion("h1", "UPSC - History"),
		baseQuestion("h2", "UPSC - History"),
		baseQuestion("m1", "Class 10 - Maths"),
	}

	expanded := Expand(base, 5)
	require.Len(t, expanded, 10) // 5 per subject, 2 subjects

	var history []model.Question
	for _, q := range expanded {
		if q.Subject == "UPSC - History" {
			history = append(history, q)
		}
	}
	require.Len(t, history, 5)

	// wraparound: h1 h2 h1 h2 h1, suffix -auto-1..5 unik
	seen := map[string]bool{}
	for i, q := range history {
		assert.True(t, strings.HasSuffix(q.ID, fmt.Sprintf("-auto-%d", i+1)), "id %s", q.ID)
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
		assert.Contains(t, q.Question, fmt.Sprintf("(Set %d)", i+1))
	}
	assert.Equal(t, "h1-auto-1", history[0].ID)
	assert.Equal(t, "h2-auto-2", history[1].ID)
	assert.Equal(t, "h1-auto-3", history[2].ID)
}

func TestExpandDefaultsSubjectToGeneral(t *testing.T) {
	expanded := Expand([]model.Question{baseQuestion("g1", "")}, 3)
	require.Len(t, expanded, 3)
	for _, q := range expanded {
		assert.Equal(t, "General", q.Subject)
	}
}

func TestListFiltersSubjectCaseInsensitive(t *testing.T) {
	s := newTestStore(t, []model.Question{
		baseQuestion("h1", "UPSC - History"),
		baseQuestion("m1", "Class 10 - Maths"),
	}, 4)

	got, err := s.List("upsc - history", 0, "en")
	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, q := range got {
		assert.Equal(t, "UPSC - History", q.Subject)
	}
}

func TestListAppliesLimit(t *testing.T) {
	s := newTestStore(t, []model.Question{baseQuestion("h1", "UPSC - History")}, 50)
	got, err := s.List("", 10, "en")
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestListHindiSubstitution(t *testing.T) {
	q := baseQuestion("h1", "UPSC - History")
	q.Translations = &model.Translations{Hi: &model.Translation{
		Question: "भारत की राजधानी क्या है",
		Options:  []string{"मुंबई", "नई दिल्ली", "कोलकाता", "चेन्नई"},
	}}
	s := newTestStore(t, []model.Question{q}, 2)

	hi, err := s.List("", 1, "hi")
	require.NoError(t, err)
	require.Len(t, hi, 1)
	assert.Contains(t, hi[0].Question, "भारत की राजधानी")
	assert.Equal(t, "नई दिल्ली", hi[0].Options[1])

	// bahasa tanpa translasi → teks asli (plus suffix Set)
	en, err := s.List("", 1, "en")
	require.NoError(t, err)
	assert.Contains(t, en[0].Question, "capital of India")
}

func TestListIncludesCustomAfterExpanded(t *testing.T) {
	s := newTestStore(t, []model.Question{baseQuestion("h1", "UPSC - History")}, 2)
	created, err := s.Create(baseQuestion("", "UPSC - History"))
	require.NoError(t, err)

	got, err := s.List("UPSC - History", 0, "en")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, created.ID, got[2].ID)
}

func TestCreateValidation(t *testing.T) {
	s := newTestStore(t, nil, 1)

	_, err := s.Create(model.Question{Options: []string{"a", "b", "c", "d"}, AnswerIndex: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Create(model.Question{Question: "x", Options: []string{"a", "b"}, AnswerIndex: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Create(model.Question{Question: "x", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 4})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateAssignsIDAndDefaultSubject(t *testing.T) {
	s := newTestStore(t, nil, 1)
	q := baseQuestion("", "")
	created, err := s.Create(q)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "General", created.Subject)

	// persisted
	got, err := s.List("General", 0, "en")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)
}

func TestUpdateMergesAndPersists(t *testing.T) {
	s := newTestStore(t, nil, 1)
	created, err := s.Create(baseQuestion("", "UPSC - Polity"))
	require.NoError(t, err)

	newText := "Who is the head of the Union executive"
	updated, err := s.Update(created.ID, QuestionPatch{Question: &newText})
	require.NoError(t, err)
	assert.Equal(t, newText, updated.Question)
	assert.Equal(t, created.Options, updated.Options)
	assert.Equal(t, "UPSC - Polity", updated.Subject)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	s := newTestStore(t, nil, 1)
	_, err := s.Update("nope", QuestionPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemoves(t *testing.T) {
	s := newTestStore(t, nil, 1)
	created, err := s.Create(baseQuestion("", ""))
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))
	got, err := s.List("", 0, "en")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteUnknownIDLeavesFileByteIdentical(t *testing.T) {
	s := newTestStore(t, nil, 1)
	_, err := s.Create(baseQuestion("keep", ""))
	require.NoError(t, err)

	before, err := os.ReadFile(s.customFile)
	require.NoError(t, err)

	require.NoError(t, s.Delete("does-not-exist"))

	after, err := os.ReadFile(s.customFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
