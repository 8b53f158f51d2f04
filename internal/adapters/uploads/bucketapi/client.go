package bucketapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"reptile-husbandry/internal/ports/objstore"
)

var (
	ErrStorageNotConfigured = errors.New("storage client not configured")
	ErrStorageUnauthorized  = errors.New("storage unauthorized")
	ErrStorageUpstream      = errors.New("storage upstream error")
)

// Config del cliente de storage (API estilo Supabase Storage).
// BaseURL y APIKey normalmente vienen de env vars en quien lo instancia.
type Config struct {
	BaseURL string
	APIKey  string

	// Bucket destino. Si está vacío se usa "care-media".
	Bucket string

	Timeout time.Duration
}

type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

var _ objstore.ObjectStore = (*Client)(nil)

func NewClient(cfg Config) *Client {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		bucket = "care-media"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

// Put sube el objeto y devuelve la URL pública del bucket.
func (c *Client) Put(ctx context.Context, path, contentType string, data []byte) (string, error) {
	if !c.IsConfigured() {
		return "", ErrStorageNotConfigured
	}
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return "", errors.New("object path required")
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUpstream, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	// upsert deshabilitado: cada upload usa un path nuevo (uuid)
	req.Header.Set("x-upsert", "false")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// ok
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrStorageUnauthorized
	default:
		return "", fmt.Errorf("%w: status=%d", ErrStorageUpstream, resp.StatusCode)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path), nil
}
