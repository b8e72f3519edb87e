package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/second-brain/backend/internal/errs"
	"github.com/anonto42/second-brain/backend/internal/middleware"
	"github.com/anonto42/second-brain/backend/internal/models"
	"github.com/anonto42/second-brain/backend/internal/repositories"
	"github.com/anonto42/second-brain/backend/pkg/random"
	"github.com/labstack/echo/v4"
)

const shareLinkPrefix = "/api/v1/brain/"

// BrainHandler handles publishing and resolving public share links
type BrainHandler struct {
	shareLinkRepository repositories.ShareLinkRepository
	contentRepository   repositories.ContentRepository
	userRepository      repositories.UserRepository
}

// NewBrainHandler creates a new BrainHandler
func NewBrainHandler(shareLinkRepo repositories.ShareLinkRepository, contentRepo repositories.ContentRepository, userRepo repositories.UserRepository) *BrainHandler {
	return &BrainHandler{
		shareLinkRepository: shareLinkRepo,
		contentRepository:   contentRepo,
		userRepository:      userRepo,
	}
}

// RegisterShareRoutes registers the share toggle on an authenticated group
func (h *BrainHandler) RegisterShareRoutes(g *echo.Group) {
	g.POST("/brain/share", h.SetShared)
}

// RegisterPublicRoutes registers the anonymous resolve route
func (h *BrainHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/brain/:sharelink", h.ResolveShareLink)
}

// SetShared enables or disables the caller's public share link. Enabling is
// idempotent: while a link is active the same hash is returned every time.
func (h *BrainHandler) SetShared(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(string)

	var req models.ShareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	ctx := c.Request().Context()

	if !req.Share {
		// Revoke; deleting a link that does not exist is not an error.
		if err := h.shareLinkRepository.DeleteShareLinkByUserID(ctx, userID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Share link deleted"})
	}

	existing, err := h.shareLinkRepository.GetShareLinkByUserID(ctx, userID)
	if err == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Share link already exists",
			"link":    shareLinkPrefix + existing.Hash,
		})
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	hash, err := random.Hash(random.HashLength)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	link := &models.ShareLink{
		Hash:   hash,
		UserID: userID,
	}

	if err := h.shareLinkRepository.CreateShareLink(ctx, link); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			// A concurrent share won the insert; return the winner's hash.
			existing, err := h.shareLinkRepository.GetShareLinkByUserID(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
			}
			return c.JSON(http.StatusOK, echo.Map{
				"message": "Share link already exists",
				"link":    shareLinkPrefix + existing.Hash,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Share link created",
		"link":    shareLinkPrefix + hash,
	})
}

// ResolveShareLink resolves a public hash to the owner's content set.
// No authentication, this endpoint is intentionally public.
func (h *BrainHandler) ResolveShareLink(c echo.Context) error {
	hash := c.Param("sharelink")
	ctx := c.Request().Context()

	link, err := h.shareLinkRepository.GetShareLinkByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// 401 rather than 404: existing clients key off this status.
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid share link"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	contents, err := h.contentRepository.GetContentsByUserID(ctx, link.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	user, err := h.userRepository.GetUserByID(ctx, link.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// Orphaned link, the owner record is gone.
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"contents": contents,
		"user": echo.Map{
			"username": user.Username,
			"id":       user.ID,
		},
	})
}
