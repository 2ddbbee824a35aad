package controller

import (
	"errors"

	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary Create a question with its alternatives
// @Tags Question bank
// @Accept json
// @Produce json
// @Param body body service.CreateQuestionRequest true "Question"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(req)
	if err != nil {
		if verr, ok := service.IsValidationError(err); ok {
			util.BadRequestField(ctx, verr.Field, verr.Message)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, q)
}

// @Summary Get a question
// @Tags Question bank
// @Produce json
// @Param id path int true "Question id"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := util.ParsePositiveUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	q, err := c.Service.GetQuestion(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, q)
}

// @Summary List questions
// @Tags Question bank
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page, limit := pagination(ctx)

	qs, total, err := c.Service.ListQuestions(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: qs, Total: total, Page: page, Limit: limit})
}
