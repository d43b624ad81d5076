package petservice

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-intake/internal/domain/intake"
	"pet-intake/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("pet service client not configured")
)

const createPath = "/pets"

// Config del servicio de creación de mascotas.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Client implementa intake.PetCreator contra el backend de mascotas.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		h := strings.TrimSpace(cfg.APIKeyHeader)
		if h == "" {
			h = "X-Api-Key"
		}
		hc.WithHeader(h, key)
	}

	return &Client{http: hc}, nil
}

type createResponse struct {
	ID string `json:"id"`
}

// CreatePet manda el record tal cual (nombres de campo del contrato del backend).
// Errores siempre como *intake.CreateError; Message viene del upstream si lo trae.
func (c *Client) CreatePet(ctx context.Context, rec intake.Record) (intake.CreatedPet, error) {
	var out createResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, createPath, nil, rec, &out); err != nil {
		ce := &intake.CreateError{Message: intake.DefaultCreateMessage, Err: err}

		var he *httpclient.HTTPError
		if errors.As(err, &he) {
			if msg := he.Message(); msg != "" {
				ce.Message = msg
			}
		}
		return intake.CreatedPet{}, ce
	}

	return intake.CreatedPet{ID: strings.TrimSpace(out.ID)}, nil
}
