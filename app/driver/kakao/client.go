package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"member-service/app/config"
)

const (
	authorizePath = "/oauth/authorize"
	tokenPath     = "/oauth/token"
	userMePath    = "/v2/user/me"

	requestTimeout = 10 * time.Second
)

// Client is a thin HTTP client for the Kakao OAuth endpoints. All calls carry
// an explicit timeout; errors are typed so callers can substitute a test double.
type Client struct {
	httpClient  *http.Client
	clientID    string
	redirectURI string
	authBaseURL string
	apiBaseURL  string
	logger      *slog.Logger
}

// TokenResponse is the code-exchange response from the authorization server
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// UserResponse is the account payload returned by the user-info endpoint
type UserResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email string `json:"email"`
	} `json:"kakao_account"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
}

// APIError represents a non-2xx response from a Kakao endpoint
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kakao api error: status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new Kakao client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.KakaoClientID == "" {
		return nil, fmt.Errorf("kakao client id is required")
	}
	if cfg.KakaoRedirectURI == "" {
		return nil, fmt.Errorf("kakao redirect uri is required")
	}

	return &Client{
		httpClient:  &http.Client{Timeout: requestTimeout},
		clientID:    cfg.KakaoClientID,
		redirectURI: cfg.KakaoRedirectURI,
		authBaseURL: strings.TrimSuffix(cfg.KakaoAuthBaseURL, "/"),
		apiBaseURL:  strings.TrimSuffix(cfg.KakaoAPIBaseURL, "/"),
		logger:      logger.With("component", "kakao_client"),
	}, nil
}

// AuthorizeURL builds the authorization redirect URL the frontend sends the
// member to.
func (c *Client) AuthorizeURL() string {
	query := url.Values{}
	query.Set("client_id", c.clientID)
	query.Set("redirect_uri", c.redirectURI)
	query.Set("response_type", "code")

	return c.authBaseURL + authorizePath + "?" + query.Encode()
}

// ExchangeCode exchanges an authorization code for a Kakao access token
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.clientID)
	form.Set("redirect_uri", c.redirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authBaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tokenResp TokenResponse
	if err := c.do(req, &tokenResp); err != nil {
		return nil, err
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token response contained no access token")
	}

	return &tokenResp, nil
}

// FetchUser fetches the account information for a Kakao access token
func (c *Client) FetchUser(ctx context.Context, accessToken string) (*UserResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+userMePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var userResp UserResponse
	if err := c.do(req, &userResp); err != nil {
		return nil, err
	}

	return &userResp, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("kakao request failed", "url", req.URL.Path, "error", err)
		return fmt.Errorf("kakao request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read kakao response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("kakao returned non-2xx", "url", req.URL.Path, "status", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode kakao response: %w", err)
	}

	return nil
}
