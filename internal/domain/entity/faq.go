package entity

import "github.com/jhoicas/agency-web/pkg/i18n"

// FAQ pregunta frecuente bilingüe.
type FAQ struct {
	ID         string `json:"_id,omitempty"`
	QuestionEn string `json:"questionEn"`
	QuestionAr string `json:"questionAr"`
	AnswerEn   string `json:"answerEn"`
	AnswerAr   string `json:"answerAr"`
	Order      int    `json:"order"`
}

func (f FAQ) Question(l i18n.Lang) string { return i18n.Pick(l, f.QuestionEn, f.QuestionAr) }
func (f FAQ) Answer(l i18n.Lang) string   { return i18n.Pick(l, f.AnswerEn, f.AnswerAr) }
