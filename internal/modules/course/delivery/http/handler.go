package handler

import (
	"net/http"

	"github.com/edava/student-records-api/internal/modules/course/dto"
	course "github.com/edava/student-records-api/internal/modules/course/service"
	"github.com/edava/student-records-api/pkg/apperror"
	"github.com/edava/student-records-api/pkg/response"
	"github.com/edava/student-records-api/pkg/validation"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	service   course.CourseService
	validator *validation.Validator
}

func NewCourseHandler(service course.CourseService, validator *validation.Validator) *CourseHandler {
	return &CourseHandler{service: service, validator: validator}
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Courses retrieved successfully", courses)
}

func (h *CourseHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if errs := h.validator.UUIDParam(id); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Course found", found)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "Invalid request body", apperror.ErrBadRequest))
		return
	}

	if errs := h.validator.Struct(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, "Course created successfully", created)
}

func (h *CourseHandler) Delete(c *gin.Context) {
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
