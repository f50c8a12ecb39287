package dto

import (
	"rupeess_backend/internals/features/education/questions/model"
	"rupeess_backend/internals/features/education/questions/store"
)

type CreateQuestionRequest struct {
	ID           string              `json:"id"`
	Question     string              `json:"question" validate:"required"`
	Options      []string            `json:"options" validate:"required,len=4,dive,required"`
	AnswerIndex  *int                `json:"answerIndex" validate:"required,min=0,max=3"`
	Subject      string              `json:"subject"`
	Translations *model.Translations `json:"translations"`
}

func (r CreateQuestionRequest) ToModel() model.Question {
	answer := 0
	if r.AnswerIndex != nil {
		answer = *r.AnswerIndex
	}
	return model.Question{
		ID:           r.ID,
		Question:     r.Question,
		Options:      r.Options,
		AnswerIndex:  answer,
		Subject:      r.Subject,
		Translations: r.Translations,
	}
}

type UpdateQuestionRequest struct {
	ID           string              `json:"id" validate:"required"`
	Question     *string             `json:"question"`
	Options      []string            `json:"options" validate:"omitempty,len=4,dive,required"`
	AnswerIndex  *int                `json:"answerIndex" validate:"omitempty,min=0,max=3"`
	Subject      *string             `json:"subject"`
	Translations *model.Translations `json:"translations"`
}

func (r UpdateQuestionRequest) ToPatch() store.QuestionPatch {
	return store.QuestionPatch{
		Question:     r.Question,
		Options:      r.Options,
		AnswerIndex:  r.AnswerIndex,
		Subject:      r.Subject,
		Translations: r.Translations,
	}
}

type DeleteQuestionRequest struct {
	ID string `json:"id" validate:"required"`
}
