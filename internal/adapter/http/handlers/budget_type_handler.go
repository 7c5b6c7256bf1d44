package handlers

import (
	"errors"
	"net/http"

	request "orcamento_api/internal/adapter/http/dto/request"
	response "orcamento_api/internal/adapter/http/dto/response"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetTypePayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_TYPE_INPUT", "Invalid budget type payload", http.StatusBadRequest)
)

// BudgetTypeHandler handles HTTP requests for budget types.

type BudgetTypeHandler struct {
	usecase usecase.IBudgetTypeUseCase
}

func NewBudgetTypeHandler(uc usecase.IBudgetTypeUseCase) *BudgetTypeHandler {
	return &BudgetTypeHandler{usecase: uc}
}

// List godoc
// @Summary  Lists all active budget types
// @Tags     budget-types
// @Produce  json
// @Success  200 {array} response.BudgetTypeResponse
// @Router   /budget-types [get]
func (h *BudgetTypeHandler) List(c *gin.Context) {
	bts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBudgetTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetTypes(bts))
}

// ListDeleted godoc
// @Summary  Lists all soft-deleted budget types
// @Tags     budget-types
// @Produce  json
// @Success  200 {array} response.BudgetTypeResponse
// @Router   /budget-types/deleted [get]
func (h *BudgetTypeHandler) ListDeleted(c *gin.Context) {
	bts, err := h.usecase.ListDeleted(c.Request.Context())
	if err != nil {
		appErr := mapBudgetTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetTypes(bts))
}

// GetByID godoc
// @Summary  Fetches one active budget type by id
// @Tags     budget-types
// @Produce  json
// @Param    id path string true "budget type id"
// @Success  200 {object} response.BudgetTypeResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /budget-types/{id} [get]
func (h *BudgetTypeHandler) GetByID(c *gin.Context) {
	bt, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetType(bt))
}

// Create godoc
// @Summary  Creates a budget type
// @Tags     budget-types
// @Accept   json
// @Produce  json
// @Param    payload body request.BudgetTypeRequest true "budget type"
// @Success  201 {object} response.BudgetTypeResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /budget-types [post]
func (h *BudgetTypeHandler) Create(c *gin.Context) {
	var payload request.BudgetTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetTypePayload.HTTPStatus, errInvalidBudgetTypePayload.ToHTTPError())
		return
	}

	bt, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapBudgetTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBudgetType(bt))
}

// Update godoc
// @Summary  Overwrites the mutable fields of a budget type
// @Tags     budget-types
// @Accept   json
// @Produce  json
// @Param    id path string true "budget type id"
// @Param    payload body request.BudgetTypeRequest true "budget type"
// @Success  200 {object} response.BudgetTypeResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /budget-types/{id} [put]
func (h *BudgetTypeHandler) Update(c *gin.Context) {
	var payload request.BudgetTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetTypePayload.HTTPStatus, errInvalidBudgetTypePayload.ToHTTPError())
		return
	}

	bt, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapBudgetTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetType(bt))
}

// Delete godoc
// @Summary  Soft-deletes a budget type
// @Tags     budget-types
// @Param    id path string true "budget type id"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /budget-types/{id} [delete]
func (h *BudgetTypeHandler) Delete(c *gin.Context) {
	if err := h.usecase.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBudgetTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapBudgetTypeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBudgetTypeNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_TYPE_NOT_FOUND", "Budget type not found or deleted", http.StatusNotFound)
	case errors.Is(err, entities.ErrUnknownBillingMethod),
		errors.Is(err, usecase.ErrInvalidBudgetTypeID),
		errors.Is(err, usecase.ErrInvalidBudgetTypeName),
		errors.Is(err, usecase.ErrInvalidFee),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidTargetEmail):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_TYPE_INPUT", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
