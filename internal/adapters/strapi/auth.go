// internal/adapters/strapi/auth.go
package strapi

import (
	"context"
	"fmt"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// Auth implements ports.AuthPort against the store's local auth provider.
// Credentials never touch this service's storage, the store issues and
// validates the JWTs.
type Auth struct {
	client *Client
}

func NewAuth(client *Client) ports.AuthPort {
	return &Auth{client: client}
}

type authResponse struct {
	JWT  string  `json:"jwt"`
	User userDoc `json:"user"`
}

func (a *Auth) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var out authResponse
	if err := a.client.post(ctx, "", "/api/auth/local/register", payload, &out); err != nil {
		return nil, fmt.Errorf("register %q: %w", username, err)
	}
	user := out.User.toDomain()
	return &user, nil
}

func (a *Auth) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	payload := map[string]string{
		"identifier": identifier,
		"password":   password,
	}
	var out authResponse
	if err := a.client.post(ctx, "", "/api/auth/local", payload, &out); err != nil {
		return "", nil, fmt.Errorf("login %q: %w", identifier, err)
	}
	user := out.User.toDomain()
	return out.JWT, &user, nil
}

func (a *Auth) Me(ctx context.Context, token string) (*domain.User, error) {
	var out userDoc
	if err := a.client.get(ctx, token, "/api/users/me", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch current user: %w", err)
	}
	user := out.toDomain()
	return &user, nil
}
