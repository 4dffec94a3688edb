package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sticker-album/internal/api"
	"sticker-album/internal/entities"
	"sticker-album/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseMock struct {
	mock.Mock
}

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) CreateUser(ctx context.Context, name, email, password string) (*entities.User, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *usecaseMock) Users(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entities.User)
	return users, args.Error(1)
}

func (m *usecaseMock) User(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *usecaseMock) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch, actingUserID int64) (*entities.User, error) {
	args := m.Called(ctx, id, patch, actingUserID)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *usecaseMock) DeleteUser(ctx context.Context, id, actingUserID int64) error {
	return m.Called(ctx, id, actingUserID).Error(0)
}

func (m *usecaseMock) Sticker(ctx context.Context, number int64) (*entities.Sticker, error) {
	args := m.Called(ctx, number)
	s, _ := args.Get(0).(*entities.Sticker)
	return s, args.Error(1)
}

func (m *usecaseMock) Stickers(ctx context.Context) ([]entities.Sticker, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entities.Sticker)
	return list, args.Error(1)
}

func (m *usecaseMock) AddSticker(ctx context.Context, userID, number int64) (*entities.UserSticker, error) {
	args := m.Called(ctx, userID, number)
	us, _ := args.Get(0).(*entities.UserSticker)
	return us, args.Error(1)
}

func (m *usecaseMock) RemoveSticker(ctx context.Context, userID, number int64) error {
	return m.Called(ctx, userID, number).Error(0)
}

func (m *usecaseMock) UserSticker(ctx context.Context, userID, number int64) (*entities.UserSticker, error) {
	args := m.Called(ctx, userID, number)
	us, _ := args.Get(0).(*entities.UserSticker)
	return us, args.Error(1)
}

func (m *usecaseMock) UserStickers(ctx context.Context, userID int64) ([]entities.UserSticker, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]entities.UserSticker)
	return list, args.Error(1)
}

func (m *usecaseMock) UserDuplicates(ctx context.Context, userID int64) ([]entities.UserSticker, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]entities.UserSticker)
	return list, args.Error(1)
}

func (m *usecaseMock) CreateNotification(ctx context.Context, from, to int64) (*entities.Notification, error) {
	args := m.Called(ctx, from, to)
	n, _ := args.Get(0).(*entities.Notification)
	return n, args.Error(1)
}

func (m *usecaseMock) UserNotifications(ctx context.Context, userID int64) ([]entities.Notification, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]entities.Notification)
	return list, args.Error(1)
}

func (m *usecaseMock) DeleteNotification(ctx context.Context, id, actingUserID int64) error {
	return m.Called(ctx, id, actingUserID).Error(0)
}

func (m *usecaseMock) CreateExchange(ctx context.Context, notificationID, stickerNumber, userID int64) (*entities.Exchange, error) {
	args := m.Called(ctx, notificationID, stickerNumber, userID)
	e, _ := args.Get(0).(*entities.Exchange)
	return e, args.Error(1)
}

func (m *usecaseMock) NotificationExchanges(ctx context.Context, notificationID int64) ([]entities.Exchange, error) {
	args := m.Called(ctx, notificationID)
	list, _ := args.Get(0).([]entities.Exchange)
	return list, args.Error(1)
}

func newTestApp(t *testing.T) (*fiber.App, *usecaseMock) {
	t.Helper()

	uc := &usecaseMock{}
	app := fiber.New()
	RegisterRoutes(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app, uc
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, header map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) api.ErrorResponse {
	t.Helper()

	var out api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestPostUserCreated(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("CreateUser", mock.Anything, "Alice", "alice@x.com", "12345678").
		Return(&entities.User{ID: 1, Name: "Alice", Email: "alice@x.com", Password: "12345678"}, nil)

	resp := doJSON(t, app, http.MethodPost, "/users",
		api.CreateUserRequest{Name: "Alice", Email: "alice@x.com", Password: "12345678"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		User api.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, int64(1), out.User.ID)
	require.Equal(t, "alice@x.com", out.User.Email)

	// The password never leaves the service.
	uc.AssertExpectations(t)
}

func TestPostUserValidationFailure(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("CreateUser", mock.Anything, "", "alice@x.com", "12345678").
		Return(nil, fmt.Errorf("%w: name is required", entities.ErrInvalidParam))

	resp := doJSON(t, app, http.MethodPost, "/users",
		api.CreateUserRequest{Email: "alice@x.com", Password: "12345678"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, api.INVALIDPARAM, decodeError(t, resp).Error.Code)
}

func TestPostUserEmailConflict(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("CreateUser", mock.Anything, "Alice", "alice@x.com", "12345678").
		Return(nil, entities.ErrEmailExists)

	resp := doJSON(t, app, http.MethodPost, "/users",
		api.CreateUserRequest{Name: "Alice", Email: "alice@x.com", Password: "12345678"}, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, api.EMAILEXISTS, decodeError(t, resp).Error.Code)
}

func TestGetUserNotFound(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("User", mock.Anything, int64(42)).Return(nil, entities.ErrQuery)

	resp := doJSON(t, app, http.MethodGet, "/users/42", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeError(t, resp)
	require.Equal(t, api.NOTFOUND, body.Error.Code)
	require.Equal(t, "resource not found", body.Error.Message)
}

func TestGetUserBadID(t *testing.T) {
	app, uc := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/users/abc", nil, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "User", mock.Anything, mock.Anything)
}

func TestPutUserForwardsActingUser(t *testing.T) {
	app, uc := newTestApp(t)

	name := "Bob"
	uc.On("UpdateUser", mock.Anything, int64(7), entities.UserPatch{Name: &name}, int64(7)).
		Return(&entities.User{ID: 7, Name: "Bob", Email: "bob@x.com"}, nil)

	resp := doJSON(t, app, http.MethodPut, "/users/7",
		api.UpdateUserRequest{Name: &name}, map[string]string{userIDHeader: "7"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestPutUserByOtherForbidden(t *testing.T) {
	app, uc := newTestApp(t)

	name := "Bob"
	uc.On("UpdateUser", mock.Anything, int64(7), mock.Anything, int64(9)).
		Return(nil, entities.ErrNotAuthorized)

	resp := doJSON(t, app, http.MethodPut, "/users/7",
		api.UpdateUserRequest{Name: &name}, map[string]string{userIDHeader: "9"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, api.NOTAUTHORIZED, decodeError(t, resp).Error.Code)
}

func TestDeleteOwnAccountForbidden(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("DeleteUser", mock.Anything, int64(7), int64(7)).Return(entities.ErrPermission)

	resp := doJSON(t, app, http.MethodDelete, "/users/7", nil, map[string]string{userIDHeader: "7"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, api.FORBIDDEN, decodeError(t, resp).Error.Code)
}

func TestPostUserStickerCreated(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("AddSticker", mock.Anything, int64(1), int64(10)).
		Return(&entities.UserSticker{
			ID: 3, Amount: 2, UserID: 1, StickerID: 5,
			Sticker: &entities.Sticker{ID: 5, Number: 10},
		}, nil)

	resp := doJSON(t, app, http.MethodPost, "/users/1/stickers", api.AddStickerRequest{Number: 10}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		UserSticker api.UserSticker `json:"user_sticker"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, int64(2), out.UserSticker.Amount)
	require.NotNil(t, out.UserSticker.Sticker)
	require.Equal(t, int64(10), out.UserSticker.Sticker.Number)
}

func TestGetUserStickersEmptyList(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("UserStickers", mock.Anything, int64(1)).Return([]entities.UserSticker{}, nil)

	resp := doJSON(t, app, http.MethodGet, "/users/1/stickers", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		UserStickers []api.UserSticker `json:"user_stickers"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.UserStickers)
	require.Empty(t, out.UserStickers)
}

func TestDeleteUserStickerNotHeld(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("RemoveSticker", mock.Anything, int64(1), int64(10)).Return(entities.ErrQuery)

	resp := doJSON(t, app, http.MethodDelete, "/users/1/stickers/10", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteNotificationByRecipient(t *testing.T) {
	app, uc := newTestApp(t)

	uc.On("DeleteNotification", mock.Anything, int64(4), int64(2)).Return(nil)

	resp := doJSON(t, app, http.MethodDelete, "/notifications/4", nil, map[string]string{userIDHeader: "2"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestWriteErrorUnknownErrorIsInternal(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return writeError(c, errors.New("connection reset"))
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, api.INTERNAL, decodeError(t, resp).Error.Code)
}
