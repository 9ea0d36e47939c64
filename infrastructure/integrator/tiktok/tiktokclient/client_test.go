package tiktokclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/info/", r.URL.Path)
		assert.Equal(t, "Bearer act.123", r.Header.Get("Authorization"))
		assert.Contains(t, r.URL.Query().Get("fields"), "follower_count")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"user":{"open_id":"o1","follower_count":1200,"following_count":3,"likes_count":9000,"video_count":14}},"error":{"code":"ok","message":"","log_id":"x"}}`))
	}))
	defer server.Close()

	user, err := NewClient(server.URL, 5*time.Second).GetUserInfo(context.Background(), "act.123")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), user.FollowerCount)
	assert.Equal(t, int64(14), user.VideoCount)
}

func TestGetUserInfoErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{},"error":{"code":"scope_not_authorized","message":"missing user.info.stats","log_id":"abc"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, 5*time.Second).GetUserInfo(context.Background(), "act.123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scope_not_authorized")
	assert.Contains(t, err.Error(), "missing user.info.stats")
}

func TestGetUserInfoHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"access_token_invalid","message":"The access token is invalid","log_id":"l1"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, 5*time.Second).GetUserInfo(context.Background(), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "access_token_invalid")
}

func TestListVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/video/list/", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"max_count":20}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"videos":[{"id":"v1","like_count":5,"view_count":100},{"id":"v2"}],"cursor":0,"has_more":false},"error":{"code":"ok"}}`))
	}))
	defer server.Close()

	videos, err := NewClient(server.URL, 5*time.Second).ListVideos(context.Background(), "act.123", 50)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, int64(5), *videos[0].LikeCount)
	assert.Nil(t, videos[1].LikeCount)
}
