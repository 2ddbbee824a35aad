package util

import "errors"

var (
	ErrExamNotFound       = errors.New("exam not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrExamHasNoQuestions = errors.New("exam has no questions")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrSlotNumberTaken    = errors.New("exam already has a question at this number")
	ErrEmailRegistered    = errors.New("email already registered")
)
