package service

import (
	"time"

	"exam_platform_backend/internal/model"
)

// answerKey identifies one correct (question, option) pair.
type answerKey struct {
	QuestionID uint
	Option     int
}

type AnswerView struct {
	ExamQuestionID uint `json:"examQuestionId"`
	QuestionID     uint `json:"questionId"`
	QuestionNumber uint `json:"questionNumber"`
	Answer         int  `json:"answer"`
	IsCorrect      bool `json:"isCorrect"`
}

// SubmissionView is a submission decorated with derived grading statistics.
// Correctness is computed here on every read and never stored.
type SubmissionView struct {
	ID                uint         `json:"id"`
	ExamID            uint         `json:"examId"`
	ExamName          string       `json:"examName,omitempty"`
	StudentID         uint         `json:"studentId"`
	StudentEmail      string       `json:"studentEmail,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	Answers           []AnswerView `json:"answers"`
	TotalQuestions    int          `json:"totalQuestions"`
	CorrectAnswers    int          `json:"correctAnswers"`
	CorrectPercentage float64      `json:"correctPercentage"`
}

func buildAnswerKeySet(alternatives []model.Alternative) map[answerKey]struct{} {
	key := make(map[answerKey]struct{}, len(alternatives))
	for _, alt := range alternatives {
		key[answerKey{QuestionID: alt.QuestionID, Option: alt.Option}] = struct{}{}
	}
	return key
}

// gradeSubmission joins every answer against the correct set. An answer with
// no matching correct alternative is simply wrong, even when the key data is
// malformed. A zero-question exam grades to 0%, never a division by zero;
// that cannot happen for freshly validated submissions but legacy rows on the
// read path still get a defined result.
func gradeSubmission(s *model.ExamSubmission, totalQuestions int, correct map[answerKey]struct{}) SubmissionView {
	view := SubmissionView{
		ID:             s.ID,
		ExamID:         s.ExamID,
		StudentID:      s.StudentID,
		CreatedAt:      s.CreatedAt,
		Answers:        make([]AnswerView, 0, len(s.Answers)),
		TotalQuestions: totalQuestions,
	}
	if s.Exam != nil {
		view.ExamName = s.Exam.Name
	}
	if s.Student != nil {
		view.StudentEmail = s.Student.Email
	}

	for _, a := range s.Answers {
		av := AnswerView{
			ExamQuestionID: a.ExamQuestionID,
			Answer:         a.Answer,
		}
		if a.ExamQuestion != nil {
			av.QuestionID = a.ExamQuestion.QuestionID
			av.QuestionNumber = a.ExamQuestion.Number
			_, av.IsCorrect = correct[answerKey{QuestionID: a.ExamQuestion.QuestionID, Option: a.Answer}]
		}
		if av.IsCorrect {
			view.CorrectAnswers++
		}
		view.Answers = append(view.Answers, av)
	}

	if totalQuestions > 0 {
		view.CorrectPercentage = float64(view.CorrectAnswers) / float64(totalQuestions) * 100
	}
	return view
}
