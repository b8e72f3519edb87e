package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/second-brain/backend/internal/errs"
	"github.com/anonto42/second-brain/backend/internal/middleware"
	"github.com/anonto42/second-brain/backend/internal/models"
	"github.com/anonto42/second-brain/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ContentHandler handles create/list/delete over a user's saved links
type ContentHandler struct {
	contentRepository repositories.ContentRepository
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentRepo repositories.ContentRepository) *ContentHandler {
	return &ContentHandler{contentRepository: contentRepo}
}

// RegisterContentRoutes registers content routes on an authenticated group
func (h *ContentHandler) RegisterContentRoutes(g *echo.Group) {
	g.POST("/content", h.CreateContent)
	g.GET("/content", h.ListContents)
	g.DELETE("/content", h.DeleteContent)
}

// CreateContent saves a new link for the authenticated user
func (h *ContentHandler) CreateContent(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(string)

	var req models.CreateContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields: link and title are required"})
	}

	content := &models.Content{
		Title:  req.Title,
		Link:   req.Link,
		UserID: userID,
	}

	if err := h.contentRepository.CreateContent(c.Request().Context(), content); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Content created successfully",
		"content": content,
	})
}

// ListContents returns all content owned by the authenticated user
func (h *ContentHandler) ListContents(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(string)

	contents, err := h.contentRepository.GetContentsByUserID(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, contents)
}

// DeleteContent deletes a content record owned by the authenticated user.
// A row belonging to someone else answers 404, same as a missing one.
func (h *ContentHandler) DeleteContent(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(string)

	var req models.DeleteContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Content ID is required"})
	}

	if err := h.contentRepository.DeleteContent(c.Request().Context(), userID, req.ContentID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Content not found or unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Content deleted successfully"})
}
