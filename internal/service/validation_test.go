package service

import (
	"strings"
	"testing"

	"exam_platform_backend/internal/model"
)

func slotsFixture() []model.ExamQuestion {
	return []model.ExamQuestion{
		{BaseModel: model.BaseModel{ID: 101}, ExamID: 7, QuestionID: 11, Number: 1},
		{BaseModel: model.BaseModel{ID: 102}, ExamID: 7, QuestionID: 12, Number: 2},
		{BaseModel: model.BaseModel{ID: 103}, ExamID: 7, QuestionID: 13, Number: 3},
	}
}

func TestValidateAnswerBatch_Success(t *testing.T) {
	answers := []AnswerInput{
		{QuestionID: 13, Answer: 1},
		{QuestionID: 11, Answer: 4},
		{QuestionID: 12, Answer: 2},
	}

	mapping, verr := validateAnswerBatch(7, slotsFixture(), answers)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}

	want := map[uint]uint{11: 101, 12: 102, 13: 103}
	if len(mapping) != len(want) {
		t.Fatalf("mapping size = %d, want %d", len(mapping), len(want))
	}
	for qid, slotID := range want {
		if mapping[qid] != slotID {
			t.Errorf("mapping[%d] = %d, want %d", qid, mapping[qid], slotID)
		}
	}
}

func TestValidateAnswerBatch_Failures(t *testing.T) {
	tests := []struct {
		name        string
		answers     []AnswerInput
		wantField   string
		wantMessage string
	}{
		{
			name: "duplicate question",
			answers: []AnswerInput{
				{QuestionID: 11, Answer: 1},
				{QuestionID: 11, Answer: 2},
				{QuestionID: 12, Answer: 3},
			},
			wantField:   "answers",
			wantMessage: "duplicate questionId in answers",
		},
		{
			name: "unknown question ids listed sorted",
			answers: []AnswerInput{
				{QuestionID: 11, Answer: 1},
				{QuestionID: 12, Answer: 1},
				{QuestionID: 13, Answer: 1},
				{QuestionID: 99, Answer: 1},
				{QuestionID: 42, Answer: 1},
			},
			wantField:   "answers",
			wantMessage: "some questionId do not belong to exam 7: [42 99]",
		},
		{
			name: "missing answers listed sorted",
			answers: []AnswerInput{
				{QuestionID: 12, Answer: 1},
			},
			wantField:   "answers",
			wantMessage: "missing answers for questions: [11 13]",
		},
		{
			name: "unknown wins over missing",
			answers: []AnswerInput{
				{QuestionID: 11, Answer: 1},
				{QuestionID: 12, Answer: 1},
				{QuestionID: 99, Answer: 1},
			},
			wantField:   "answers",
			wantMessage: "some questionId do not belong to exam 7",
		},
		{
			name: "invalid option code",
			answers: []AnswerInput{
				{QuestionID: 11, Answer: 6},
				{QuestionID: 12, Answer: 0},
				{QuestionID: 13, Answer: 3},
			},
			wantField:   "answers",
			wantMessage: "invalid answer option for questions: [11 12]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapping, verr := validateAnswerBatch(7, slotsFixture(), tc.answers)
			if verr == nil {
				t.Fatalf("expected validation error, got mapping %v", mapping)
			}
			if verr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tc.wantField)
			}
			if !strings.Contains(verr.Message, tc.wantMessage) {
				t.Errorf("message = %q, want it to contain %q", verr.Message, tc.wantMessage)
			}
		})
	}
}

func TestValidateAnswerBatch_Deterministic(t *testing.T) {
	answers := []AnswerInput{
		{QuestionID: 50, Answer: 1},
		{QuestionID: 30, Answer: 1},
		{QuestionID: 40, Answer: 1},
	}

	_, first := validateAnswerBatch(7, slotsFixture(), answers)
	for i := 0; i < 10; i++ {
		_, again := validateAnswerBatch(7, slotsFixture(), answers)
		if again == nil || first == nil {
			t.Fatal("expected validation errors")
		}
		if again.Message != first.Message {
			t.Fatalf("error payload not deterministic: %q vs %q", again.Message, first.Message)
		}
	}
}
