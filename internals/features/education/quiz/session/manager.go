package session

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	questionModel "rupeess_backend/internals/features/education/questions/model"
	"rupeess_backend/internals/features/education/quiz/engine"
	quizModel "rupeess_backend/internals/features/education/quiz/model"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// maxCatchupTicks membatasi konversi wall-clock → Tick untuk session
// yang lama ditinggal, supaya satu request tidak memutar jutaan tick.
const maxCatchupTicks = 3600

// Session satu quiz berjalan. State engine immutable-by-copy;
// mutex menjaga replace + tick catch-up.
type Session struct {
	ID        string
	mu        sync.Mutex
	state     engine.State
	lastTick  time.Time
	touchedAt time.Time
	persisted bool
}

// Manager menyimpan session in-memory, keyed by uuid.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	db  *gorm.DB // nil = hasil tidak dipersist (fallback mode)
	now func() time.Time
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		db:       db,
		now:      time.Now,
	}
}

// Start membuat session baru dan langsung load pertanyaan.
func (m *Manager) Start(cfg engine.Config, questions []questionModel.Question) (string, engine.State) {
	st := engine.Reduce(engine.NewState(cfg), engine.Loaded{Questions: questions})

	now := m.now()
	sess := &Session{
		ID:        uuid.NewString(),
		state:     st,
		lastTick:  now,
		touchedAt: now,
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return sess.ID, st
}

// Get mengembalikan state terkini setelah tick catch-up.
func (m *Manager) Get(id string) (engine.State, error) {
	return m.Apply(id, nil)
}

// Apply: catch-up tick dari wall clock, lalu apply event (nil = read-only).
// Transisi ke Finished mem-persist hasil sekali.
func (m *Manager) Apply(id string, ev engine.Event) (engine.State, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return engine.State{}, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := m.now()
	sess.touchedAt = now

	// konversi detik berlalu → event Tick; timer berhenti sendiri
	// begitu state Finished (reducer membekukan Tick).
	elapsed := int(now.Sub(sess.lastTick).Seconds())
	if elapsed > maxCatchupTicks {
		elapsed = maxCatchupTicks
	}
	for i := 0; i < elapsed; i++ {
		sess.state = engine.Reduce(sess.state, engine.Tick{})
	}
	if elapsed > 0 {
		sess.lastTick = sess.lastTick.Add(time.Duration(elapsed) * time.Second)
	}

	if ev != nil {
		sess.state = engine.Reduce(sess.state, ev)
		if _, isRestart := ev.(engine.Restart); isRestart && sess.state.Phase == engine.PhaseActive {
			sess.lastTick = now
			sess.persisted = false
		}
	}

	if sess.state.Phase == engine.PhaseFinished && !sess.persisted {
		sess.persisted = true
		m.persistResult(sess)
	}

	return sess.state, nil
}

func (m *Manager) persistResult(sess *Session) {
	if m.db == nil {
		return
	}
	history, err := json.Marshal(sess.state.History)
	if err != nil {
		log.Printf("[ERROR] Gagal marshal quiz history: %v", err)
		return
	}
	result := quizModel.QuizResultModel{
		QuizResultSessionID: sess.ID,
		QuizResultSubject:   sess.state.Config.Subject,
		QuizResultScore:     sess.state.Score,
		QuizResultAnswered:  sess.state.AnsweredCount,
		QuizResultSeconds:   sess.state.TimeSeconds,
		QuizResultHistory:   datatypes.JSON(history),
	}
	if err := m.db.Create(&result).Error; err != nil {
		log.Printf("[ERROR] Gagal simpan quiz result: %v", err)
	}
}

// StartCleanup sapu session basi tiap interval; stop lewat channel.
func (m *Manager) StartCleanup(ttl, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				removed := m.sweep(ttl)
				if removed > 0 {
					log.Printf("[INFO] Quiz session sweep: %d session basi dihapus", removed)
				}
			case <-stop:
				return
			}
		}
	}()
}

func (m *Manager) sweep(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, sess := range m.sessions {
		sess.mu.Lock()
		stale := sess.touchedAt.Before(cutoff)
		sess.mu.Unlock()
		if stale {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
