package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "orcamento_api/internal/adapter/http/dto/request"
	response "orcamento_api/internal/adapter/http/dto/response"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_REQUEST_INPUT", "Invalid quote request payload", http.StatusBadRequest)
)

const (
	defaultPageSize = 10
)

// QuoteRequestHandler handles HTTP requests for quote requests, including the
// presigned document URL endpoints.

type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc}
}

// List godoc
// @Summary  Lists active quote requests, paginated
// @Tags     quote-requests
// @Produce  json
// @Param    page query int false "zero-based page index" default(0)
// @Param    size query int false "page size" default(10)
// @Param    sortBy query string false "sort field (createdAt, updatedAt, requesterName, feeUsed, estimatedTotal, status)"
// @Param    direction query string false "asc for ascending, anything else descending"
// @Success  200 {object} response.QuoteRequestPageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quote-requests [get]
func (h *QuoteRequestHandler) List(c *gin.Context) {
	h.listPaginated(c, h.usecase.ListPaginated)
}

// ListDeleted godoc
// @Summary  Lists soft-deleted quote requests, paginated
// @Tags     quote-requests
// @Produce  json
// @Param    page query int false "zero-based page index" default(0)
// @Param    size query int false "page size" default(10)
// @Param    sortBy query string false "sort field"
// @Param    direction query string false "asc for ascending, anything else descending"
// @Success  200 {object} response.QuoteRequestPageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quote-requests/deleted [get]
func (h *QuoteRequestHandler) ListDeleted(c *gin.Context) {
	h.listPaginated(c, h.usecase.ListDeletedPaginated)
}

func (h *QuoteRequestHandler) listPaginated(
	c *gin.Context,
	lister func(ctx context.Context, q usecase.PageQuery) (usecase.Page, error),
) {
	query := usecase.PageQuery{
		Page:      intQuery(c, "page", 0),
		Size:      intQuery(c, "size", defaultPageSize),
		SortBy:    c.Query("sortBy"),
		Direction: c.Query("direction"),
	}

	page, err := lister(c.Request.Context(), query)
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequestPage(page))
}

// GetByID godoc
// @Summary  Fetches one active quote request by id
// @Tags     quote-requests
// @Produce  json
// @Param    id path string true "quote request id"
// @Success  200 {object} response.QuoteRequestResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quote-requests/{id} [get]
func (h *QuoteRequestHandler) GetByID(c *gin.Context) {
	qr, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(qr))
}

// Create godoc
// @Summary  Creates a quote request and enqueues the created notification
// @Tags     quote-requests
// @Accept   json
// @Produce  json
// @Param    payload body request.QuoteRequestRequest true "quote request"
// @Success  201 {object} response.QuoteRequestResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quote-requests [post]
func (h *QuoteRequestHandler) Create(c *gin.Context) {
	var payload request.QuoteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	qr, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteRequest(qr))
}

// Update godoc
// @Summary  Overwrites the mutable fields of a quote request
// @Tags     quote-requests
// @Accept   json
// @Produce  json
// @Param    id path string true "quote request id"
// @Param    payload body request.QuoteRequestRequest true "quote request"
// @Success  200 {object} response.QuoteRequestResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quote-requests/{id} [put]
func (h *QuoteRequestHandler) Update(c *gin.Context) {
	var payload request.QuoteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	qr, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(qr))
}

// Delete godoc
// @Summary  Soft-deletes a quote request
// @Tags     quote-requests
// @Param    id path string true "quote request id"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /quote-requests/{id} [delete]
func (h *QuoteRequestHandler) Delete(c *gin.Context) {
	if err := h.usecase.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateUploadURL godoc
// @Summary  Issues a presigned upload URL for a quote document
// @Tags     quote-requests
// @Accept   json
// @Produce  json
// @Param    payload body request.DocumentUploadRequest true "document metadata"
// @Success  201 {object} response.DocumentUploadResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /quote-requests/uploads [post]
func (h *QuoteRequestHandler) CreateUploadURL(c *gin.Context) {
	var payload request.DocumentUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.CreateDocumentUploadURL(c.Request.Context(), payload.FileName, payload.ContentType)
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDocumentUploadTicket(ticket))
}

// GetDocumentURL godoc
// @Summary  Issues a presigned download URL for a quote's stored document
// @Tags     quote-requests
// @Produce  json
// @Param    id path string true "quote request id"
// @Success  200 {object} response.DocumentURLResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /quote-requests/{id}/document-url [get]
func (h *QuoteRequestHandler) GetDocumentURL(c *gin.Context) {
	url, err := h.usecase.GetDocumentDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DocumentURLResponse{URL: url})
}

func mapQuoteRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found or deleted", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBudgetTypeRef):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_TYPE_REFERENCE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentStorageUnavailable):
		return pkg.NewDomainErrorSimple("DOCUMENT_STORAGE_UNAVAILABLE", "Document storage not configured", http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrUnknownBillingMethod),
		errors.Is(err, usecase.ErrInvalidQuoteRequestID),
		errors.Is(err, usecase.ErrInvalidRequesterName),
		errors.Is(err, usecase.ErrInvalidRequesterEmail),
		errors.Is(err, usecase.ErrInvalidDocumentName),
		errors.Is(err, usecase.ErrInvalidDocumentStorageKey),
		errors.Is(err, usecase.ErrInvalidDocumentMimeType),
		errors.Is(err, usecase.ErrInvalidDocumentSize),
		errors.Is(err, usecase.ErrInvalidFeeUsed),
		errors.Is(err, usecase.ErrInvalidCountedUnits),
		errors.Is(err, usecase.ErrInvalidEstimatedTotal),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPageRequest):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_REQUEST_INPUT", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		// Let the usecase reject it as an invalid page request.
		return -1
	}
	return v
}
