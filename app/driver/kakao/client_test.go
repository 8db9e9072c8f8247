package kakao

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-service/app/config"
	"member-service/app/utils/logger"
)

func createTestClient(t *testing.T, authURL, apiURL string) *Client {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	client, err := NewClient(&config.Config{
		KakaoClientID:    "rest-api-key",
		KakaoRedirectURI: "https://hobbyit.example.com/oauth/kakao",
		KakaoAuthBaseURL: authURL,
		KakaoAPIBaseURL:  apiURL,
	}, testLogger)
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	_, err = NewClient(&config.Config{KakaoRedirectURI: "https://x"}, testLogger)
	assert.Error(t, err)

	_, err = NewClient(&config.Config{KakaoClientID: "key"}, testLogger)
	assert.Error(t, err)
}

func TestClient_AuthorizeURL(t *testing.T) {
	client := createTestClient(t, "https://kauth.kakao.com", "https://kapi.kakao.com")

	authorizeURL := client.AuthorizeURL()

	assert.Contains(t, authorizeURL, "https://kauth.kakao.com/oauth/authorize?")
	assert.Contains(t, authorizeURL, "client_id=rest-api-key")
	assert.Contains(t, authorizeURL, "response_type=code")
	assert.Contains(t, authorizeURL, "redirect_uri=https%3A%2F%2Fhobbyit.example.com%2Foauth%2Fkakao")
}

func TestClient_ExchangeCode(t *testing.T) {
	t.Run("successful exchange", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/oauth/token", r.URL.Path)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "rest-api-key", r.PostForm.Get("client_id"))
			assert.Equal(t, "auth-code-123", r.PostForm.Get("code"))

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "kakao-access-token",
				"token_type":   "bearer",
				"expires_in":   21599,
			})
		}))
		defer srv.Close()

		client := createTestClient(t, srv.URL, srv.URL)

		tokenResp, err := client.ExchangeCode(context.Background(), "auth-code-123")

		require.NoError(t, err)
		assert.Equal(t, "kakao-access-token", tokenResp.AccessToken)
	})

	t.Run("provider rejects the code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
		}))
		defer srv.Close()

		client := createTestClient(t, srv.URL, srv.URL)

		_, err := client.ExchangeCode(context.Background(), "bad-code")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("empty access token in response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := createTestClient(t, srv.URL, srv.URL)

		_, err := client.ExchangeCode(context.Background(), "code")
		assert.Error(t, err)
	})
}

func TestClient_FetchUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/user/me", r.URL.Path)
		assert.Equal(t, "Bearer kakao-access-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"id": 12345,
			"kakao_account": {"email": "a@x.com"},
			"properties": {"nickname": "alice", "profile_image": "https://img.example.com/a.png"}
		}`))
	}))
	defer srv.Close()

	client := createTestClient(t, srv.URL, srv.URL)

	user, err := client.FetchUser(context.Background(), "kakao-access-token")

	require.NoError(t, err)
	assert.Equal(t, int64(12345), user.ID)
	assert.Equal(t, "a@x.com", user.KakaoAccount.Email)
	assert.Equal(t, "alice", user.Properties.Nickname)
	assert.Equal(t, "https://img.example.com/a.png", user.Properties.ProfileImage)
}
