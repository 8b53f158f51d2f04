package supauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"reptile-husbandry/internal/platform/httpclient"
	"reptile-husbandry/internal/ports/auth"
)

// Verifier valida tokens contra el servicio de auth externo (estilo Supabase:
// GET /auth/v1/user con el bearer del usuario).
type Verifier struct {
	http   *httpclient.Client
	apiKey string
}

var (
	ErrAuthNotConfigured = errors.New("auth service not configured")
	ErrTokenInvalid      = errors.New("token invalid or expired")
	ErrAuthUnavailable   = errors.New("auth service unavailable")
)

// Config del verifier. BaseURL y APIKey son obligatorios.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// New crea un Verifier. Falla si la config está incompleta.
func New(cfg Config) (*Verifier, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAuthNotConfigured
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("supauth: %w", err)
	}
	return &Verifier{http: hc, apiKey: cfg.APIKey}, nil
}

var _ auth.TokenVerifier = (*Verifier)(nil)

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Verify resuelve los claims del token. Tokens rechazados por el servicio
// retornan ErrTokenInvalid; errores de red o 5xx retornan ErrAuthUnavailable.
func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenInvalid
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"apikey":        v.apiKey,
	}

	var user userResponse
	err := v.http.GetJSON(ctx, "/auth/v1/user", headers, &user)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
				return auth.Claims{}, ErrTokenInvalid
			}
			return auth.Claims{}, fmt.Errorf("%w: status %d", ErrAuthUnavailable, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}

	if strings.TrimSpace(user.ID) == "" {
		return auth.Claims{}, ErrTokenInvalid
	}

	return auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
