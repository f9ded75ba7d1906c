package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/internal/repositories"
	"github.com/pangrm/blogdee/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationTestContext(t *testing.T, method, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	return c, rec
}

func TestGetMyNotifications_EnrichesActor(t *testing.T) {
	notifications := new(mockNotificationRepository)
	users := new(mockUserRepository)
	h := NewNotificationHandler(notifications, users)

	recipient := uint(1)
	notifications.On("GetByRecipientID", uint(1), 0, 0).Return([]models.Notification{
		{ID: 5, Type: models.NotificationTypeLike, RecipientID: &recipient, ActorID: 2, Message: "Somchai liked your post: First post"},
		{ID: 6, Type: models.NotificationTypeSystem, RecipientID: nil, ActorID: 2, Message: "maintenance tonight"},
	}, int64(2), nil)
	users.On("GetUserByID", uint(2)).Return(&models.User{ID: 2, Username: "somchai", Name: "Somchai", ProfilePic: "https://cdn.example.com/somchai.png"}, nil).Once()

	c, rec := newNotificationTestContext(t, http.MethodGet, "", 1)
	require.NoError(t, h.GetMyNotifications(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		TotalItems    int64 `json:"totalItems"`
		Notifications []struct {
			ID    uint   `json:"id"`
			Type  string `json:"type"`
			Actor struct {
				ID       uint   `json:"id"`
				Username string `json:"username"`
			} `json:"actor"`
		} `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.TotalItems)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, "somchai", resp.Notifications[0].Actor.Username)
	// The actor cache serves the second row; GetUserByID is hit once.
	users.AssertNumberOfCalls(t, "GetUserByID", 1)
}

func TestGetNotificationsByUserID_ForbiddenForOtherUsers(t *testing.T) {
	h := NewNotificationHandler(new(mockNotificationRepository), new(mockUserRepository))

	c, _ := newNotificationTestContext(t, http.MethodGet, "", 1)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.GetNotificationsByUserID(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestCreateNotification_RejectsSelfTarget(t *testing.T) {
	h := NewNotificationHandler(new(mockNotificationRepository), new(mockUserRepository))

	body := `{"type":"like","target_type":"post","recipient_id":2,"actor_id":2,"message":"self"}`
	c, _ := newNotificationTestContext(t, http.MethodPost, body, 1)

	err := h.CreateNotification(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateNotification_BroadcastAllowed(t *testing.T) {
	notifications := new(mockNotificationRepository)
	h := NewNotificationHandler(notifications, new(mockUserRepository))

	notifications.On("CreateNotification", mock.AnythingOfType("*models.Notification")).Return(nil)

	body := `{"type":"system","target_type":"user","actor_id":1,"message":"maintenance tonight"}`
	c, rec := newNotificationTestContext(t, http.MethodPost, body, 1)

	require.NoError(t, h.CreateNotification(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	notifications := new(mockNotificationRepository)
	h := NewNotificationHandler(notifications, new(mockUserRepository))

	notifications.On("MarkAsRead", uint(99), uint(1)).Return(repositories.ErrNotificationNotFound)

	c, _ := newNotificationTestContext(t, http.MethodPut, "", 1)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.MarkAsRead(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestMarkAsRead_ScopedToCurrentUser(t *testing.T) {
	notifications := new(mockNotificationRepository)
	h := NewNotificationHandler(notifications, new(mockUserRepository))

	// The repository update is recipient-scoped; another user's notification
	// matches zero rows and surfaces as not found.
	notifications.On("MarkAsRead", uint(5), uint(1)).Return(repositories.ErrNotificationNotFound)

	c, _ := newNotificationTestContext(t, http.MethodPut, "", 1)
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := h.MarkAsRead(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	notifications.AssertCalled(t, "MarkAsRead", uint(5), uint(1))
}

func TestMarkAllAsRead(t *testing.T) {
	notifications := new(mockNotificationRepository)
	h := NewNotificationHandler(notifications, new(mockUserRepository))

	notifications.On("MarkAllAsRead", uint(1)).Return(nil)

	c, rec := newNotificationTestContext(t, http.MethodPut, "", 1)
	require.NoError(t, h.MarkAllAsRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
