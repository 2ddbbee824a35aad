package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"exam_platform_backend/internal/config"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"
	"exam_platform_backend/pkg/database"
	"exam_platform_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Requires a throwaway MySQL database:
//
//	EXAM_PLATFORM_INTEGRATION=1 go test ./internal/service/
//
// Connection defaults match configs/config.yaml and can be overridden with
// EXAM_PLATFORM_TEST_DB_* variables.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("EXAM_PLATFORM_INTEGRATION") != "1" {
		t.Skip("set EXAM_PLATFORM_INTEGRATION=1 to run integration tests")
	}

	logger.Log = zap.NewNop()

	port := 3306
	if raw := os.Getenv("EXAM_PLATFORM_TEST_DB_PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}
	cfg := config.DatabaseConfig{
		Host:      envOr("EXAM_PLATFORM_TEST_DB_HOST", "localhost"),
		Port:      port,
		User:      envOr("EXAM_PLATFORM_TEST_DB_USER", "exam_platform"),
		Password:  envOr("EXAM_PLATFORM_TEST_DB_PASSWORD", "exam_platform"),
		DBName:    envOr("EXAM_PLATFORM_TEST_DB_NAME", "exam_platform_test"),
		Charset:   "utf8mb4",
		ParseTime: true,
	}

	db, err := database.InitDB(&cfg, "release")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type integrationFixture struct {
	svc     *SubmissionService
	exam    *model.Exam
	student *model.Student
	// question ids in slot order
	questionIDs []uint
}

func seedIntegrationFixture(t *testing.T, db *gorm.DB) *integrationFixture {
	t.Helper()

	examRepo := repository.NewExamRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	suffix := time.Now().UnixNano()

	student := &model.Student{
		Name:  "Integration Student",
		Email: fmt.Sprintf("itest_%d@example.test", suffix),
	}
	if err := studentRepo.CreateStudent(student); err != nil {
		t.Fatalf("seed student: %v", err)
	}

	exam := &model.Exam{Name: fmt.Sprintf("ITEST Exam %d", suffix)}
	var questionIDs []uint
	for i := 0; i < 3; i++ {
		q := model.Question{
			Statement: fmt.Sprintf("ITEST question %d-%d", suffix, i+1),
			Alternatives: []model.Alternative{
				{Option: model.OptionA, Content: "a", IsCorrect: true},
				{Option: model.OptionB, Content: "b"},
			},
		}
		if err := questionRepo.CreateQuestion(&q); err != nil {
			t.Fatalf("seed question: %v", err)
		}
		questionIDs = append(questionIDs, q.ID)
		exam.Questions = append(exam.Questions, model.ExamQuestion{QuestionID: q.ID, Number: uint(i + 1)})
	}
	if err := examRepo.CreateExam(exam); err != nil {
		t.Fatalf("seed exam: %v", err)
	}

	// nil redis client: the cache degrades to a miss on every read
	svc := NewSubmissionService(examRepo, studentRepo, questionRepo, submissionRepo,
		NewExamSchemaCache(nil, time.Minute))

	return &integrationFixture{svc: svc, exam: exam, student: student, questionIDs: questionIDs}
}

func (f *integrationFixture) countRows(t *testing.T, db *gorm.DB) (int64, int64) {
	t.Helper()
	var subs, answers int64
	if err := db.Model(&model.ExamSubmission{}).Where("exam_id = ?", f.exam.ID).Count(&subs).Error; err != nil {
		t.Fatalf("count submissions: %v", err)
	}
	err := db.Model(&model.ExamSubmissionAnswer{}).
		Joins("JOIN exam_submissions s ON s.id = exam_submission_answers.submission_id").
		Where("s.exam_id = ?", f.exam.ID).
		Count(&answers).Error
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	return subs, answers
}

func TestSubmitAndFetch_DBIntegration(t *testing.T) {
	db := openIntegrationDB(t)
	f := seedIntegrationFixture(t, db)
	ctx := context.Background()

	req := SubmitExamRequest{
		ExamID:    f.exam.ID,
		StudentID: f.student.ID,
		Answers: []AnswerInput{
			{QuestionID: f.questionIDs[0], Answer: model.OptionA},
			{QuestionID: f.questionIDs[1], Answer: model.OptionB},
			{QuestionID: f.questionIDs[2], Answer: model.OptionA},
		},
	}

	view, err := f.svc.SubmitExam(ctx, req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if view.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", view.TotalQuestions)
	}
	if view.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", view.CorrectAnswers)
	}

	subs, answers := f.countRows(t, db)
	if subs != 1 || answers != 3 {
		t.Fatalf("persisted rows = %d submissions / %d answers, want 1/3", subs, answers)
	}

	// second attempt by the same student is allowed
	if _, err := f.svc.SubmitExam(ctx, req); err != nil {
		t.Fatalf("second attempt: %v", err)
	}

	examID := f.exam.ID
	views, err := f.svc.ListSubmissions(ctx, SubmissionFilter{ExamID: &examID})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("fetched %d submissions, want 2", len(views))
	}
	for i := 1; i < len(views); i++ {
		if views[i].CreatedAt.After(views[i-1].CreatedAt) {
			t.Error("submissions not ordered newest-first")
		}
	}

	again, err := f.svc.ListSubmissions(ctx, SubmissionFilter{ExamID: &examID})
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if len(again) != len(views) || again[0].ID != views[0].ID {
		t.Error("fetch is not idempotent")
	}
}

func TestSubmitRejections_DBIntegration(t *testing.T) {
	db := openIntegrationDB(t)
	f := seedIntegrationFixture(t, db)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(req *SubmitExamRequest)
		wantErr error
	}{
		{
			name:    "unknown exam",
			mutate:  func(req *SubmitExamRequest) { req.ExamID = 999999999 },
			wantErr: util.ErrExamNotFound,
		},
		{
			name:    "unknown student",
			mutate:  func(req *SubmitExamRequest) { req.StudentID = 999999999 },
			wantErr: util.ErrStudentNotFound,
		},
		{
			name: "duplicate answers",
			mutate: func(req *SubmitExamRequest) {
				req.Answers[1].QuestionID = req.Answers[0].QuestionID
			},
		},
		{
			name: "missing answer",
			mutate: func(req *SubmitExamRequest) {
				req.Answers = req.Answers[:2]
			},
		},
		{
			name: "question from another exam",
			mutate: func(req *SubmitExamRequest) {
				req.Answers = append(req.Answers, AnswerInput{QuestionID: 999999999, Answer: model.OptionA})
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := SubmitExamRequest{
				ExamID:    f.exam.ID,
				StudentID: f.student.ID,
				Answers: []AnswerInput{
					{QuestionID: f.questionIDs[0], Answer: model.OptionA},
					{QuestionID: f.questionIDs[1], Answer: model.OptionB},
					{QuestionID: f.questionIDs[2], Answer: model.OptionA},
				},
			}
			tc.mutate(&req)

			_, err := f.svc.SubmitExam(ctx, req)
			if err == nil {
				t.Fatal("expected rejection")
			}
			if tc.wantErr != nil && err != tc.wantErr {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr == nil {
				if _, ok := IsValidationError(err); !ok {
					t.Fatalf("err = %v, want a field-scoped validation error", err)
				}
			}

			subs, answers := f.countRows(t, db)
			if subs != 0 || answers != 0 {
				t.Fatalf("rejected submit left %d submissions / %d answers behind", subs, answers)
			}
		})
	}
}
