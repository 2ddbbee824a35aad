package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"
	"exam_platform_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type mockSubmissionService struct {
	submitFn func(ctx context.Context, req service.SubmitExamRequest) (*service.SubmissionView, error)
	listFn   func(ctx context.Context, filter service.SubmissionFilter) ([]service.SubmissionView, error)
}

func (m *mockSubmissionService) SubmitExam(ctx context.Context, req service.SubmitExamRequest) (*service.SubmissionView, error) {
	if m.submitFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.submitFn(ctx, req)
}

func (m *mockSubmissionService) ListSubmissions(ctx context.Context, filter service.SubmissionFilter) ([]service.SubmissionView, error) {
	if m.listFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.listFn(ctx, filter)
}

func newTestRouter(svc submissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	c := &SubmissionController{Service: svc}
	router := gin.New()
	router.POST("/api/exams/submissions", c.Submit)
	router.GET("/api/exams/submissions", c.Fetch)
	return router
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rr.Body.String())
	}
	return out
}

func TestSubmit_Created(t *testing.T) {
	var captured service.SubmitExamRequest
	router := newTestRouter(&mockSubmissionService{
		submitFn: func(_ context.Context, req service.SubmitExamRequest) (*service.SubmissionView, error) {
			captured = req
			return &service.SubmissionView{ID: 1, ExamID: req.ExamID, StudentID: req.StudentID, TotalQuestions: 3, CorrectAnswers: 2, CorrectPercentage: 100 * 2.0 / 3.0}, nil
		},
	})

	body := `{"examId":7,"studentId":3,"answers":[{"questionId":11,"answer":1},{"questionId":12,"answer":2},{"questionId":13,"answer":3}]}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/exams/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rr.Code, rr.Body.String())
	}
	if captured.ExamID != 7 || captured.StudentID != 3 || len(captured.Answers) != 3 {
		t.Errorf("request not passed through: %+v", captured)
	}
}

func TestSubmit_BindingRejectsBadOption(t *testing.T) {
	router := newTestRouter(&mockSubmissionService{
		submitFn: func(_ context.Context, _ service.SubmitExamRequest) (*service.SubmissionView, error) {
			t.Fatal("service must not be called for a malformed batch")
			return nil, nil
		},
	})

	body := `{"examId":7,"studentId":3,"answers":[{"questionId":11,"answer":9}]}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/exams/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestSubmit_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
	}{
		{name: "exam not found", err: util.ErrExamNotFound, wantField: "examId"},
		{name: "student not found", err: util.ErrStudentNotFound, wantField: "studentId"},
		{name: "exam has no questions", err: util.ErrExamHasNoQuestions, wantField: "examId"},
		{name: "validation error", err: &service.ValidationError{Field: "answers", Message: "missing answers for questions: [13]"}, wantField: "answers"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&mockSubmissionService{
				submitFn: func(_ context.Context, _ service.SubmitExamRequest) (*service.SubmissionView, error) {
					return nil, tc.err
				},
			})

			body := `{"examId":7,"studentId":3,"answers":[{"questionId":11,"answer":1}]}`
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/exams/submissions", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}

			out := decodeBody(t, rr)
			data, _ := out["data"].(map[string]interface{})
			if data == nil || data[tc.wantField] == nil {
				t.Errorf("expected field-scoped payload for %q, got %s", tc.wantField, rr.Body.String())
			}
		})
	}
}

func TestFetch_InvalidFilters(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{name: "non-numeric student id", query: "?studentId=abc", wantField: "studentId"},
		{name: "non-numeric exam id", query: "?examId=x1", wantField: "examId"},
		{name: "zero exam id", query: "?examId=0", wantField: "examId"},
		{name: "negative student id", query: "?studentId=-3", wantField: "studentId"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&mockSubmissionService{
				listFn: func(_ context.Context, _ service.SubmissionFilter) ([]service.SubmissionView, error) {
					t.Fatal("service must not be called for an invalid filter")
					return nil, nil
				},
			})

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/exams/submissions"+tc.query, nil)
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rr.Code)
			}

			out := decodeBody(t, rr)
			data, _ := out["data"].(map[string]interface{})
			if data == nil || data[tc.wantField] == nil {
				t.Errorf("expected field-scoped payload for %q, got %s", tc.wantField, rr.Body.String())
			}
		})
	}
}

func TestFetch_PassesFilters(t *testing.T) {
	var captured service.SubmissionFilter
	router := newTestRouter(&mockSubmissionService{
		listFn: func(_ context.Context, filter service.SubmissionFilter) ([]service.SubmissionView, error) {
			captured = filter
			return []service.SubmissionView{}, nil
		},
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/exams/submissions?examId=7&studentId=3", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if captured.ExamID == nil || *captured.ExamID != 7 {
		t.Errorf("ExamID filter not passed: %+v", captured.ExamID)
	}
	if captured.StudentID == nil || *captured.StudentID != 3 {
		t.Errorf("StudentID filter not passed: %+v", captured.StudentID)
	}
}

func TestFetch_StudentNotFound(t *testing.T) {
	router := newTestRouter(&mockSubmissionService{
		listFn: func(_ context.Context, _ service.SubmissionFilter) ([]service.SubmissionView, error) {
			return nil, util.ErrStudentNotFound
		},
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/exams/submissions?studentId=9999", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
