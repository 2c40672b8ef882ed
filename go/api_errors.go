package shopserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/vnstore/go-shop-api-server/internal/shared/errors"
	"github.com/vnstore/go-shop-api-server/internal/shared/pagination"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError translates a status plus error into an RFC 7807 response.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusConflict:
		problem = apierrors.ErrConflict.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}

// parsePagination reads page and limit query parameters, defaulting to the
// first page of ten items.
func parsePagination(c *gin.Context) (pagination.Request, bool) {
	page, ok := parseQueryInt(c, "page", 1)
	if !ok {
		return pagination.Request{}, false
	}
	limit, ok := parseQueryInt(c, "limit", 10)
	if !ok {
		return pagination.Request{}, false
	}
	request, err := pagination.NewRequest(page, limit)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return pagination.Request{}, false
	}
	return request, true
}

func parseQueryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return value, true
}
