package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/pangrm/blogdee/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentTestContext(t *testing.T, method, postID, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
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
	c.SetPath("/posts/:post_id/comments")
	c.SetParamNames("post_id")
	c.SetParamValues(postID)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	return c, rec
}

func TestCreateComment(t *testing.T) {
	engagement := new(mockEngagementService)
	h := NewCommentHandler(engagement, new(mockCommentRepository), new(mockPostRepository))

	engagement.On("AddComment", mock.Anything, uint(2), uint(10), "great read").
		Return(&models.Comment{ID: 7, PostID: 10, UserID: 2, CommentText: "great read"}, nil)

	c, rec := newCommentTestContext(t, http.MethodPost, "10", `{"comment_text":"great read"}`, 2)
	require.NoError(t, h.CreateComment(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var comment models.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))
	assert.Equal(t, uint(7), comment.ID)
	assert.Equal(t, "great read", comment.CommentText)
}

func TestCreateComment_EmptyTextRejected(t *testing.T) {
	h := NewCommentHandler(new(mockEngagementService), new(mockCommentRepository), new(mockPostRepository))

	c, _ := newCommentTestContext(t, http.MethodPost, "10", `{"comment_text":""}`, 2)
	err := h.CreateComment(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestGetCommentsByPostID_PaginatesAndJoinsAuthor(t *testing.T) {
	comments := new(mockCommentRepository)
	posts := new(mockPostRepository)
	h := NewCommentHandler(new(mockEngagementService), comments, posts)

	posts.On("GetPostByID", uint(10)).Return(&models.Post{ID: 10}, nil)
	comments.On("GetCommentsByPostID", uint(10), 0, 0).Return([]models.Comment{
		{
			ID:          7,
			PostID:      10,
			UserID:      2,
			CommentText: "great read",
			CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Author:      models.User{ID: 2, Username: "somchai", Name: "Somchai"},
		},
	}, int64(1), nil)

	c, rec := newCommentTestContext(t, http.MethodGet, "10", "", 0)
	require.NoError(t, h.GetCommentsByPostID(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		TotalItems int64 `json:"totalItems"`
		TotalPages int   `json:"totalPages"`
		Comments   []struct {
			ID     uint `json:"id"`
			Author struct {
				Username string `json:"username"`
			} `json:"author"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.TotalItems)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "somchai", resp.Comments[0].Author.Username)
}
