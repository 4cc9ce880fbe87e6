package employee

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-employee/internal/middleware"
	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/contextutil"
	"go-employee/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	return NewHandlerWithRedis(service, nil, logger...)
}

// NewHandlerWithRedis additionally wires the Redis client that completes
// the idempotency cycle on create.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

// writeError is the single place errors become HTTP responses. Anything
// that is not an AppError is logged in full server-side and surfaced as a
// generic 500 body.
func (h *Handler) writeError(c *gin.Context, err error) {
	rid := contextutil.GetRequestID(c.Request.Context())

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		h.logger.Error("unexpected error",
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		appErr = apperror.ErrInternal.WithDetails("An unexpected error occurred")
	} else {
		h.logger.Warn("employee request failed",
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", appErr.HTTPStatus),
			zap.String("code", appErr.Code),
			zap.String("message", appErr.Message),
		)
	}
	response.Error(c, appErr)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee binding failed", zap.Error(err))
		h.writeError(c, apperror.MapBindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.completeIdempotency(c, resp)
	response.Success(c, http.StatusCreated, resp)
}

// completeIdempotency stores the created record under the request's
// idempotency key and releases the in-flight lock the middleware took.
func (h *Handler) completeIdempotency(c *gin.Context, resp EmployeeResponse) {
	if h.rdb == nil {
		return
	}
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	if cacheKey == "" {
		return
	}

	ctx := c.Request.Context()
	if payload, err := json.Marshal(resp); err == nil {
		if err := h.rdb.Set(ctx, cacheKey, payload, 24*time.Hour).Err(); err != nil {
			h.logger.Warn("failed to store idempotent response", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	if lockKey != "" {
		if err := h.rdb.Del(ctx, lockKey).Err(); err != nil {
			h.logger.Warn("failed to release idempotency lock", zap.String("key", lockKey), zap.Error(err))
		}
	}
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http get all employees")
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetById(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.logger.Debug("http get employee by id", zap.Int("emp_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.logger.Debug("http update employee", zap.Int("emp_id", id))

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee binding failed", zap.Error(err))
		h.writeError(c, apperror.MapBindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Patch(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.logger.Debug("http patch employee", zap.Int("emp_id", id))

	var req PatchEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http patch employee binding failed", zap.Error(err))
		h.writeError(c, apperror.MapBindingError(err))
		return
	}

	resp, err := h.service.Patch(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.logger.Debug("http delete employee", zap.Int("emp_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetByDesignation(c *gin.Context) {
	designation := c.Param("designation")

	resp, err := h.service.GetByDesignation(c.Request.Context(), designation)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteByDesignation(c *gin.Context) {
	designation := c.Param("designation")

	deleted, err := h.service.DeleteByDesignation(c.Request.Context(), designation)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) GetByCompany(c *gin.Context) {
	company := c.Param("company")

	resp, err := h.service.GetByCompany(c.Request.Context(), company)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) SearchByName(c *gin.Context) {
	name, ok := c.GetQuery("name")
	if !ok {
		h.writeError(c, apperror.MissingParameter("name"))
		return
	}

	resp, err := h.service.SearchByName(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetBornAfter(c *gin.Context) {
	raw, ok := c.GetQuery("date")
	if !ok {
		h.writeError(c, apperror.MissingParameter("date"))
		return
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		h.writeError(c, apperror.TypeMismatch("date", "date (YYYY-MM-DD)"))
		return
	}

	resp, err := h.service.GetBornAfter(c.Request.Context(), date)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Filter(c *gin.Context) {
	designation, ok := c.GetQuery("designation")
	if !ok {
		h.writeError(c, apperror.MissingParameter("designation"))
		return
	}
	company, ok := c.GetQuery("company")
	if !ok {
		h.writeError(c, apperror.MissingParameter("company"))
		return
	}

	resp, err := h.service.GetByDesignationAndCompany(c.Request.Context(), designation, company)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) CountByDesignation(c *gin.Context) {
	designation := c.Param("designation")

	count, err := h.service.CountByDesignation(c.Request.Context(), designation)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, count)
}

func (h *Handler) ExistsByName(c *gin.Context) {
	name, ok := c.GetQuery("name")
	if !ok {
		h.writeError(c, apperror.MissingParameter("name"))
		return
	}

	exists, err := h.service.ExistsByName(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, exists)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Employee service is healthy")
}

func (h *Handler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.logger.Warn("http invalid employee id", zap.String("id", c.Param("id")))
		h.writeError(c, apperror.TypeMismatch("id", "integer"))
		return 0, false
	}
	return id, true
}
