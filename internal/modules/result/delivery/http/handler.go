package handler

import (
	"net/http"

	"github.com/edava/student-records-api/internal/modules/result/dto"
	result "github.com/edava/student-records-api/internal/modules/result/service"
	"github.com/edava/student-records-api/pkg/apperror"
	"github.com/edava/student-records-api/pkg/response"
	"github.com/edava/student-records-api/pkg/validation"
	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	service   result.ResultService
	validator *validation.Validator
}

func NewResultHandler(service result.ResultService, validator *validation.Validator) *ResultHandler {
	return &ResultHandler{service: service, validator: validator}
}

func (h *ResultHandler) List(c *gin.Context) {
	results, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Results retrieved successfully", results)
}

func (h *ResultHandler) Upsert(c *gin.Context) {
	var req dto.UpsertResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "Invalid request body", apperror.ErrBadRequest))
		return
	}

	if errs := h.validator.Struct(&req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	upserted, created, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if created {
		response.JSON(c, http.StatusCreated, "Result created successfully", upserted)
		return
	}
	response.JSON(c, http.StatusOK, "Result updated successfully", upserted)
}

func (h *ResultHandler) Delete(c *gin.Context) {
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
