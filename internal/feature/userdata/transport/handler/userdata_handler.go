// Package handler provides the HTTP handlers for the userdata feature:
// the JSON CRUD/aggregation API and the users listing page.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/userdata/transport/http/dto"
	"portal_backend/internal/feature/userdata/usecase"
	"portal_backend/internal/platform/middleware"
	"portal_backend/internal/platform/view"
)

// UserDataUsecase defines the collection operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserDataUsecase interface {
	InsertOne(ctx context.Context, user *entity.User) error
	InsertMany(ctx context.Context, users []*entity.User) error
	UpdateOne(ctx context.Context, id uint, fields usecase.Fields) (usecase.WriteResult, error)
	UpdateMany(ctx context.Context, filter usecase.Filter, fields usecase.Fields) (usecase.WriteResult, error)
	ReplaceOne(ctx context.Context, id uint, user *entity.User) (usecase.WriteResult, error)
	DeleteOne(ctx context.Context, id uint) (usecase.WriteResult, error)
	DeleteMany(ctx context.Context, filter usecase.Filter) (usecase.WriteResult, error)
	Find(ctx context.Context, filter usecase.Filter) ([]entity.User, error)
	FindPage(ctx context.Context, page, limit int) ([]entity.User, error)
	Aggregate(ctx context.Context) (usecase.AgeStats, error)
	ListEmails(ctx context.Context) ([]string, error)
}

// UserDataHandler handles the generic user-collection endpoints.
type UserDataHandler struct {
	data UserDataUsecase
}

// NewUserDataHandler creates a new UserDataHandler instance.
func NewUserDataHandler(data UserDataUsecase) *UserDataHandler {
	return &UserDataHandler{data: data}
}

// serverError logs the cause and answers with the generic 500 payload.
func serverError(c *gin.Context, op string, err error) {
	slog.Error("userdata operation failed", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return 0, false
	}
	return uint(id), true
}

// InsertOne creates a single user document.
func (h *UserDataHandler) InsertOne(c *gin.Context) {
	var doc dto.UserDoc
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user document"})
		return
	}
	user := doc.ToEntity()
	if err := h.data.InsertOne(c.Request.Context(), user); err != nil {
		serverError(c, "insertOne", err)
		return
	}
	c.JSON(http.StatusCreated, dto.UserDocFromEntity(*user))
}

// InsertMany creates a batch of user documents.
func (h *UserDataHandler) InsertMany(c *gin.Context) {
	var docs []dto.UserDoc
	if err := c.ShouldBindJSON(&docs); err != nil || len(docs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user documents"})
		return
	}
	users := make([]*entity.User, len(docs))
	for i, d := range docs {
		users[i] = d.ToEntity()
	}
	if err := h.data.InsertMany(c.Request.Context(), users); err != nil {
		serverError(c, "insertMany", err)
		return
	}
	out := make([]dto.UserDoc, len(users))
	for i, u := range users {
		out[i] = dto.UserDocFromEntity(*u)
	}
	c.JSON(http.StatusCreated, gin.H{"insertedCount": len(out), "users": out})
}

// UpdateOne applies a partial update to the user with the given ID.
func (h *UserDataHandler) UpdateOne(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateOneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid update data"})
		return
	}
	result, err := h.data.UpdateOne(c.Request.Context(), id, req.ToFields())
	if err != nil {
		if errors.Is(err, usecase.ErrNoFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Update data is required"})
			return
		}
		serverError(c, "updateOne", err)
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateMany applies a partial update to every user matching the filter.
func (h *UserDataHandler) UpdateMany(c *gin.Context) {
	var req dto.UpdateManyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Filter and updateData are required"})
		return
	}
	result, err := h.data.UpdateMany(c.Request.Context(), req.Filter.ToFilter(), req.UpdateData.ToFields())
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyFilter) || errors.Is(err, usecase.ErrNoFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Filter and updateData are required"})
			return
		}
		serverError(c, "updateMany", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ReplaceOne overwrites the user with the given ID with the new document.
func (h *UserDataHandler) ReplaceOne(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var doc dto.UserDoc
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user document"})
		return
	}
	result, err := h.data.ReplaceOne(c.Request.Context(), id, doc.ToEntity())
	if err != nil {
		serverError(c, "replaceOne", err)
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteOne removes the user with the given ID.
func (h *UserDataHandler) DeleteOne(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.data.DeleteOne(c.Request.Context(), id)
	if err != nil {
		serverError(c, "deleteOne", err)
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteMany removes every user matching the filter.
func (h *UserDataHandler) DeleteMany(c *gin.Context) {
	var req dto.DeleteManyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Filter is required"})
		return
	}
	result, err := h.data.DeleteMany(c.Request.Context(), req.Filter.ToFilter())
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Filter is required"})
			return
		}
		serverError(c, "deleteMany", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// queryFilter builds a filter from the find endpoint's query parameters.
func queryFilter(c *gin.Context) usecase.Filter {
	filter := usecase.Filter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}
	if raw := c.Query("age"); raw != "" {
		if age, err := strconv.Atoi(raw); err == nil {
			filter.Age = &age
		}
	}
	return filter
}

// Find returns the users matching the query parameters, projected to
// the public fields.
func (h *UserDataHandler) Find(c *gin.Context) {
	users, err := h.data.Find(c.Request.Context(), queryFilter(c))
	if err != nil {
		serverError(c, "find", err)
		return
	}
	out := make([]dto.UserDoc, len(users))
	for i, u := range users {
		out[i] = dto.UserDocFromEntity(u)
	}
	c.JSON(http.StatusOK, out)
}

// FindWithCursor returns one page of users, 10 per page by default.
func (h *UserDataHandler) FindWithCursor(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.data.FindPage(c.Request.Context(), page, limit)
	if err != nil {
		serverError(c, "findWithCursor", err)
		return
	}
	out := make([]dto.UserDoc, len(users))
	for i, u := range users {
		out[i] = dto.UserDocFromEntity(u)
	}
	c.JSON(http.StatusOK, out)
}

// Aggregate returns the average age and total count over all users.
func (h *UserDataHandler) Aggregate(c *gin.Context) {
	stats, err := h.data.Aggregate(c.Request.Context())
	if err != nil {
		serverError(c, "aggregate", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListPage renders the page listing every user's email.
func (h *UserDataHandler) ListPage(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	emails, err := h.data.ListEmails(c.Request.Context())
	if err != nil {
		slog.Error("failed to list user emails", "error", err)
		view.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.HTML(http.StatusOK, "users.html", gin.H{
		"Title":  "Users",
		"Theme":  sess.Theme,
		"Emails": emails,
	})
}
