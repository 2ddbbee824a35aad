package controller

import (
	"errors"

	"exam_platform_backend/internal/service"
	"exam_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	Service *service.StudentService
}

func NewStudentController(svc *service.StudentService) *StudentController {
	return &StudentController{Service: svc}
}

// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Param body body service.CreateStudentRequest true "Student"
// @Success 201 {object} util.Response{data=model.Student}
// @Failure 400 {object} util.Response
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req service.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.Service.CreateStudent(req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequestField(ctx, "email", "Email already registered.")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, student)
}

// @Summary Get a student
// @Tags Students
// @Produce json
// @Param id path int true "Student id"
// @Success 200 {object} util.Response{data=model.Student}
// @Failure 404 {object} util.Response
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, err := util.ParsePositiveUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	student, err := c.Service.GetStudent(id)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, student)
}

// @Summary List students
// @Tags Students
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, limit := pagination(ctx)

	students, total, err := c.Service.ListStudents(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: students, Total: total, Page: page, Limit: limit})
}
