package controller

import (
	"errors"
	"strconv"

	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

// @Summary Create an exam
// @Tags Exam management
// @Accept json
// @Produce json
// @Param body body service.CreateExamRequest true "Exam with optional initial question slots"
// @Success 201 {object} util.Response{data=model.Exam}
// @Failure 400 {object} util.Response
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req service.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.CreateExam(req)
	if err != nil {
		if verr, ok := service.IsValidationError(err); ok {
			util.BadRequestField(ctx, verr.Field, verr.Message)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, exam)
}

// @Summary List exams
// @Tags Exam management
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	page, limit := pagination(ctx)

	exams, total, err := c.Service.ListExams(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: exams, Total: total, Page: page, Limit: limit})
}

// @Summary Get an exam with its question slots
// @Tags Exam management
// @Produce json
// @Param id path int true "Exam id"
// @Success 200 {object} util.Response{data=model.Exam}
// @Failure 404 {object} util.Response
// @Router /exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	id, err := util.ParsePositiveUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	exam, err := c.Service.GetExam(id)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, exam)
}

// @Summary Attach a question to an exam slot
// @Tags Exam management
// @Accept json
// @Produce json
// @Param id path int true "Exam id"
// @Param body body service.ExamQuestionBinding true "Question and slot number"
// @Success 201 {object} util.Response{data=model.ExamQuestion}
// @Failure 400 {object} util.Response
// @Router /exams/{id}/questions [post]
func (c *ExamController) AttachQuestion(ctx *gin.Context) {
	id, err := util.ParsePositiveUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.ExamQuestionBinding
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	eq, err := c.Service.AttachQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrExamNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrQuestionNotFound):
			util.BadRequestField(ctx, "questionId", "Question not found.")
		case errors.Is(err, util.ErrSlotNumberTaken):
			util.BadRequestField(ctx, "number", "Exam already has a question at this number.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, eq)
}

func pagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
