package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizResultModel menyimpan hasil akhir satu sesi quiz.
// History (satu record per soal) disimpan sebagai JSONB.
type QuizResultModel struct {
	QuizResultID        uuid.UUID      `gorm:"column:quiz_result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_result_id"`
	QuizResultSessionID string         `gorm:"column:quiz_result_session_id;type:varchar(64);not null" json:"quiz_result_session_id"`
	QuizResultSubject   string         `gorm:"column:quiz_result_subject;type:text" json:"quiz_result_subject"`
	QuizResultScore     int            `gorm:"column:quiz_result_score;not null" json:"quiz_result_score"`
	QuizResultAnswered  int            `gorm:"column:quiz_result_answered;not null" json:"quiz_result_answered"`
	QuizResultSeconds   int            `gorm:"column:quiz_result_seconds;not null" json:"quiz_result_seconds"`
	QuizResultHistory   datatypes.JSON `gorm:"column:quiz_result_history;type:jsonb" json:"quiz_result_history,omitempty"`
	QuizResultCreatedAt time.Time      `gorm:"column:quiz_result_created_at;autoCreateTime" json:"quiz_result_created_at"`
}

func (QuizResultModel) TableName() string { return "quiz_results" }
