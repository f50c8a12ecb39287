package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"rupeess_backend/internals/features/education/questions/model"
)

var (
	ErrNotFound   = errors.New("question not found")
	ErrValidation = errors.New("invalid question")
)

// QuestionPatch adalah partial update; field nil = tidak diubah.
type QuestionPatch struct {
	Question     *string
	Options      []string
	AnswerIndex  *int
	Subject      *string
	Translations *model.Translations
}

// Store abstraksi supaya backing engine (file / KV / SQL) bisa diganti
// tanpa menyentuh controller.
type Store interface {
	List(subject string, limit int, lang string) ([]model.Question, error)
	Create(q model.Question) (model.Question, error)
	Update(id string, patch QuestionPatch) (model.Question, error)
	Delete(id string) error
}

// =======================
// FILE STORE
// =======================

// FileStore: dua flat file JSON — base (seed, read-only) dan custom (CRUD).
// Setiap mutasi menulis ulang seluruh file custom. Mutex hanya menjaga
// writer dalam satu proses; antar proses tetap last-write-wins.
type FileStore struct {
	baseFile         string
	customFile       string
	expandPerSubject int

	mu sync.Mutex
}

func NewFileStore(baseFile, customFile string, expandPerSubject int) *FileStore {
	if expandPerSubject <= 0 {
		expandPerSubject = 500
	}
	return &FileStore{
		baseFile:         baseFile,
		customFile:       customFile,
		expandPerSubject: expandPerSubject,
	}
}

// Expand melipatgandakan base set: n variant per subject, id di-suffix
// "-auto-{k}" dan teks di-suffix "(Set k)", cycling dengan wraparound
// kalau n > jumlah base question subject tsb.
func Expand(base []model.Question, perSubject int) []model.Question {
	bySubject := make(map[string][]model.Question)
	var order []string

	for _, q := range base {
		key := q.SubjectOrDefault()
		if _, ok := bySubject[key]; !ok {
			order = append(order, key)
		}
		bySubject[key] = append(bySubject[key], q)
	}

	var expanded []model.Question
	for _, subject := range order {
		qs := bySubject[subject]
		if len(qs) == 0 {
			continue
		}
		for i := 0; i < perSubject; i++ {
			base := qs[i%len(qs)]
			v := base
			v.ID = fmt.Sprintf("%s-auto-%d", base.ID, i+1)
			v.Question = fmt.Sprintf("%s (Set %d)", base.Question, i+1)
			v.Subject = subject
			expanded = append(expanded, v)
		}
	}
	return expanded
}

func (s *FileStore) List(subject string, limit int, lang string) ([]model.Question, error) {
	base := s.readBase()
	all := Expand(base, s.expandPerSubject)

	// custom questions (dari admin) ikut di-list; file hilang bukan error
	if custom, err := s.readCustom(); err == nil {
		all = append(all, custom...)
	}

	filtered := all
	if subject != "" {
		filtered = filtered[:0:0]
		for _, q := range all {
			if strings.EqualFold(q.Subject, subject) {
				filtered = append(filtered, q)
			}
		}
	}

	mapped := make([]model.Question, 0, len(filtered))
	for _, q := range filtered {
		mapped = append(mapped, q.Localized(lang))
	}

	if limit > 0 && limit < len(mapped) {
		mapped = mapped[:limit]
	}
	return mapped, nil
}

func (s *FileStore) Create(q model.Question) (model.Question, error) {
	if err := q.Validate(); err != nil {
		return model.Question{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if q.ID == "" {
		q.ID = "q-" + uuid.NewString()
	}
	q.Subject = q.SubjectOrDefault()

	s.mu.Lock()
	defer s.mu.Unlock()

	questions, err := s.readCustom()
	if err != nil {
		return model.Question{}, err
	}
	questions = append(questions, q)
	if err := s.writeCustom(questions); err != nil {
		return model.Question{}, err
	}
	return q, nil
}

func (s *FileStore) Update(id string, patch QuestionPatch) (model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions, err := s.readCustom()
	if err != nil {
		return model.Question{}, err
	}

	idx := -1
	for i, q := range questions {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Question{}, ErrNotFound
	}

	merged := questions[idx]
	if patch.Question != nil {
		merged.Question = *patch.Question
	}
	if patch.Options != nil {
		merged.Options = patch.Options
	}
	if patch.AnswerIndex != nil {
		merged.AnswerIndex = *patch.AnswerIndex
	}
	if patch.Subject != nil {
		merged.Subject = *patch.Subject
	}
	if patch.Translations != nil {
		merged.Translations = patch.Translations
	}

	if err := merged.Validate(); err != nil {
		return model.Question{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	questions[idx] = merged
	if err := s.writeCustom(questions); err != nil {
		return model.Question{}, err
	}
	return merged, nil
}

// Delete: id tidak dikenal adalah no-op sukses; file tidak ditulis ulang
// supaya tetap byte-identical.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions, err := s.readCustom()
	if err != nil {
		return err
	}

	kept := questions[:0:0]
	for _, q := range questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(questions) {
		return nil
	}
	return s.writeCustom(kept)
}

// =======================
// File IO
// =======================

func (s *FileStore) readBase() []model.Question {
	raw, err := os.ReadFile(s.baseFile)
	if err != nil {
		return nil
	}
	var questions []model.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil
	}
	return questions
}

func (s *FileStore) readCustom() ([]model.Question, error) {
	raw, err := os.ReadFile(s.customFile)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Question{}, nil
		}
		return nil, err
	}
	var questions []model.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *FileStore) writeCustom(questions []model.Question) error {
	raw, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.customFile, raw, 0o644)
}
