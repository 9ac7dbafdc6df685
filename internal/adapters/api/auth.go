package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/umesh576/servicehub-cli/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, "/user/login", "", payload)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if !accepted(status) {
		return "", fmt.Errorf("login failed: status %d: %s", status, strings.TrimSpace(string(body)))
	}

	var decoded loginResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if decoded.Token == "" {
		return "", fmt.Errorf("login response missing token: %w", domain.ErrMalformedResponse)
	}

	return decoded.Token, nil
}

type identitySchema struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// validateResponse covers both identity shapes the authority is known to
// return: the identity as the top-level body, or nested under "user".
type validateResponse struct {
	identitySchema
	User *identitySchema `json:"user"`
}

func (c *Client) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	path := "/api/auth/validate?token=" + url.QueryEscape(token)

	status, body, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("validate token: %w", err)
	}
	if !accepted(status) {
		return domain.Identity{}, fmt.Errorf("validate token: status %d: %w", status, domain.ErrTokenRejected)
	}

	var decoded validateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.Identity{}, fmt.Errorf("decode validate response: %w", domain.ErrMalformedResponse)
	}

	identity := toIdentity(decoded.identitySchema)
	if !identity.Resolved() && decoded.User != nil {
		identity = toIdentity(*decoded.User)
	}
	if !identity.Resolved() {
		return domain.Identity{}, fmt.Errorf("validate response carries no identity: %w", domain.ErrMalformedResponse)
	}

	return identity, nil
}

func toIdentity(schema identitySchema) domain.Identity {
	return domain.Identity{
		ID:   schema.ID,
		Name: schema.Name,
		Role: domain.Role(strings.ToUpper(strings.TrimSpace(schema.Role))),
	}
}

type userProfileSchema struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Role          string `json:"role"`
	BookServiceID int    `json:"bookServiceId"`
}

func (c *Client) FetchUserProfile(ctx context.Context, token string, userID int) (domain.UserProfile, error) {
	path := fmt.Sprintf("/user/searchuser/%d", userID)

	status, body, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("fetch user profile: %w", err)
	}
	if status == http.StatusNotFound {
		return domain.UserProfile{}, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	if !accepted(status) {
		return domain.UserProfile{}, fmt.Errorf("fetch user profile: status %d: %s", status, strings.TrimSpace(string(body)))
	}

	var decoded userProfileSchema
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.UserProfile{}, fmt.Errorf("decode user profile: %w", domain.ErrMalformedResponse)
	}

	return domain.UserProfile{
		ID:            decoded.ID,
		Name:          decoded.Name,
		Email:         decoded.Email,
		Phone:         decoded.Phone,
		Address:       decoded.Address,
		Role:          domain.Role(strings.ToUpper(strings.TrimSpace(decoded.Role))),
		BookServiceID: decoded.BookServiceID,
	}, nil
}
