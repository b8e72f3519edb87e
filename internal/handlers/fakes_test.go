package handlers

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"

	"github.com/anonto42/second-brain/backend/internal/errs"
	"github.com/anonto42/second-brain/backend/internal/models"
	"github.com/anonto42/second-brain/backend/internal/repositories"
	"github.com/anonto42/second-brain/backend/validators"
	"github.com/labstack/echo/v4"
)

// In-memory repository fakes used across the handler tests.

type fakeUserRepo struct {
	byID   map[string]*models.User
	nextID int

	createErr error
	getErr    error
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*models.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Username == u.Username {
			return errs.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Username == username {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

type fakeContentRepo struct {
	contents []models.Content
	nextID   int

	createErr error
	listErr   error
}

var _ repositories.ContentRepository = (*fakeContentRepo)(nil)

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{}
}

func (f *fakeContentRepo) CreateContent(_ context.Context, c *models.Content) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	c.ID = fmt.Sprintf("content-%d", f.nextID)
	f.contents = append(f.contents, *c)
	return nil
}

func (f *fakeContentRepo) GetContentsByUserID(_ context.Context, userID string) ([]models.Content, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	owned := []models.Content{}
	for _, c := range f.contents {
		if c.UserID == userID {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

func (f *fakeContentRepo) DeleteContent(_ context.Context, userID, contentID string) error {
	for i, c := range f.contents {
		if c.ID == contentID && c.UserID == userID {
			f.contents = append(f.contents[:i], f.contents[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeShareLinkRepo struct {
	byUser map[string]*models.ShareLink
	nextID int

	// raceWinner, when set, makes the next CreateShareLink lose the insert
	// race: the winner is installed and errs.ErrDuplicate is returned.
	raceWinner *models.ShareLink
}

var _ repositories.ShareLinkRepository = (*fakeShareLinkRepo)(nil)

func newFakeShareLinkRepo() *fakeShareLinkRepo {
	return &fakeShareLinkRepo{byUser: map[string]*models.ShareLink{}}
}

func (f *fakeShareLinkRepo) CreateShareLink(_ context.Context, link *models.ShareLink) error {
	if f.raceWinner != nil {
		winner := f.raceWinner
		f.raceWinner = nil
		f.byUser[winner.UserID] = winner
		return errs.ErrDuplicate
	}
	if _, exists := f.byUser[link.UserID]; exists {
		return errs.ErrDuplicate
	}
	f.nextID++
	link.ID = fmt.Sprintf("link-%d", f.nextID)
	cpy := *link
	f.byUser[link.UserID] = &cpy
	return nil
}

func (f *fakeShareLinkRepo) GetShareLinkByUserID(_ context.Context, userID string) (*models.ShareLink, error) {
	link, ok := f.byUser[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *link
	return &cpy, nil
}

func (f *fakeShareLinkRepo) GetShareLinkByHash(_ context.Context, hash string) (*models.ShareLink, error) {
	for _, link := range f.byUser {
		if link.Hash == hash {
			cpy := *link
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeShareLinkRepo) DeleteShareLinkByUserID(_ context.Context, userID string) error {
	delete(f.byUser, userID)
	return nil
}

// newEcho returns an echo instance with the validator hook wired the way
// cmd/server/main.go does it.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

// newJSONContext builds an echo context carrying a JSON body, plus the
// recorder capturing the response.
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
