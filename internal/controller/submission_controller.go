package controller

import (
	"context"
	"errors"

	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"
	"exam_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type submissionService interface {
	SubmitExam(ctx context.Context, req service.SubmitExamRequest) (*service.SubmissionView, error)
	ListSubmissions(ctx context.Context, filter service.SubmissionFilter) ([]service.SubmissionView, error)
}

type SubmissionController struct {
	Service submissionService
}

func NewSubmissionController(svc *service.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: svc}
}

// @Summary Submit an exam (all answers at once)
// @Description Creates a submission and all its answer rows atomically. Exactly one answer per exam question is required; answer options are the codes 1-5. Multiple attempts per student are allowed.
// @Tags Exam
// @Accept json
// @Produce json
// @Param body body service.SubmitExamRequest true "Submission"
// @Success 201 {object} util.Response{data=service.SubmissionView}
// @Failure 400 {object} util.Response "Validation error"
// @Router /exams/submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	var req service.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.Service.SubmitExam(ctx.Request.Context(), req)
	if err != nil {
		c.submitError(ctx, err)
		return
	}

	monitoring.SubmissionCounter.WithLabelValues("accepted").Inc()
	util.Created(ctx, view)
}

func (c *SubmissionController) submitError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrExamNotFound):
		monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
		util.BadRequestField(ctx, "examId", "Exam not found.")
	case errors.Is(err, util.ErrStudentNotFound):
		monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
		util.BadRequestField(ctx, "studentId", "Student not found.")
	case errors.Is(err, util.ErrExamHasNoQuestions):
		monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
		util.BadRequestField(ctx, "examId", "Exam has no questions.")
	default:
		if verr, ok := service.IsValidationError(err); ok {
			monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
			util.BadRequestField(ctx, verr.Field, verr.Message)
			return
		}
		monitoring.SubmissionCounter.WithLabelValues("error").Inc()
		util.LogInternalError(ctx, err)
	}
}

// @Summary Fetch exam submissions (optional filters)
// @Description Returns graded submissions newest-first. Both filters are optional and combine conjunctively.
// @Tags Exam
// @Produce json
// @Param examId query int false "Filter by exam id"
// @Param studentId query int false "Filter by student id"
// @Success 200 {object} util.Response{data=[]service.SubmissionView}
// @Failure 400 {object} util.Response "Invalid filter"
// @Router /exams/submissions [get]
func (c *SubmissionController) Fetch(ctx *gin.Context) {
	var filter service.SubmissionFilter

	if raw := ctx.Query("examId"); raw != "" {
		id, err := util.ParsePositiveUint(raw)
		if err != nil {
			util.BadRequestField(ctx, "examId", "must be a positive integer")
			return
		}
		filter.ExamID = &id
	}

	if raw := ctx.Query("studentId"); raw != "" {
		id, err := util.ParsePositiveUint(raw)
		if err != nil {
			util.BadRequestField(ctx, "studentId", "must be a positive integer")
			return
		}
		filter.StudentID = &id
	}

	views, err := c.Service.ListSubmissions(ctx.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.BadRequestField(ctx, "studentId", "Student not found.")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, views)
}
