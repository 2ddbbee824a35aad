package service

import (
	"fmt"
	"sort"

	"exam_platform_backend/internal/model"
)

// AnswerInput is one submitted answer. The binding tags are the schema-level
// guard for the fixed option enumeration.
type AnswerInput struct {
	QuestionID uint `json:"questionId" binding:"required,min=1"`
	Answer     int  `json:"answer" binding:"required,oneof=1 2 3 4 5"`
}

// ValidationError rejects a request with a reason scoped to a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// validateAnswerBatch enforces the structural invariants of a submission
// against the exam's question slots: no duplicate questions, every answered
// question belongs to the exam, every slot answered exactly once, every
// option within the valid code range. Checks run in that order and the first
// failing one wins; set-difference failures list every offending question id
// in ascending order. On success it returns the question_id to
// exam_question_id mapping the writer needs, so identities are resolved only
// once.
func validateAnswerBatch(examID uint, slots []model.ExamQuestion, answers []AnswerInput) (map[uint]uint, *ValidationError) {
	slotByQuestion := make(map[uint]uint, len(slots))
	for _, slot := range slots {
		slotByQuestion[slot.QuestionID] = slot.ID
	}

	seen := make(map[uint]bool, len(answers))
	for _, a := range answers {
		if seen[a.QuestionID] {
			return nil, &ValidationError{
				Field:   "answers",
				Message: "duplicate questionId in answers",
			}
		}
		seen[a.QuestionID] = true
	}

	var unknown []uint
	for _, a := range answers {
		if _, ok := slotByQuestion[a.QuestionID]; !ok {
			unknown = append(unknown, a.QuestionID)
		}
	}
	if len(unknown) > 0 {
		sortIDs(unknown)
		return nil, &ValidationError{
			Field:   "answers",
			Message: fmt.Sprintf("some questionId do not belong to exam %d: %v", examID, unknown),
		}
	}

	var missing []uint
	for _, slot := range slots {
		if !seen[slot.QuestionID] {
			missing = append(missing, slot.QuestionID)
		}
	}
	if len(missing) > 0 {
		sortIDs(missing)
		return nil, &ValidationError{
			Field:   "answers",
			Message: fmt.Sprintf("missing answers for questions: %v", missing),
		}
	}

	var badOptions []uint
	for _, a := range answers {
		if !model.IsValidOption(a.Answer) {
			badOptions = append(badOptions, a.QuestionID)
		}
	}
	if len(badOptions) > 0 {
		sortIDs(badOptions)
		return nil, &ValidationError{
			Field:   "answers",
			Message: fmt.Sprintf("invalid answer option for questions: %v", badOptions),
		}
	}

	mapping := make(map[uint]uint, len(answers))
	for _, a := range answers {
		mapping[a.QuestionID] = slotByQuestion[a.QuestionID]
	}
	return mapping, nil
}

func sortIDs(ids []uint) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
