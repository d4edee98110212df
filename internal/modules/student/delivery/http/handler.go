package handler

import (
	"net/http"

	"github.com/edava/student-records-api/internal/modules/student/dto"
	student "github.com/edava/student-records-api/internal/modules/student/service"
	"github.com/edava/student-records-api/pkg/apperror"
	"github.com/edava/student-records-api/pkg/response"
	"github.com/edava/student-records-api/pkg/validation"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	service   student.StudentService
	validator *validation.Validator
}

func NewStudentHandler(service student.StudentService, validator *validation.Validator) *StudentHandler {
	return &StudentHandler{service: service, validator: validator}
}

func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Students retrieved successfully", students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if errs := h.validator.UUIDParam(id); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	student, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Student found", student)
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "Invalid request body", apperror.ErrBadRequest))
		return
	}

	req.Normalize()
	if errs := h.validator.Struct(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, "Student created successfully", created)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if errs := h.validator.UUIDParam(id); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
