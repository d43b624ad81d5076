package plansfeatures

import (
	"context"
	"errors"
	"strings"
)

// Resolver implementa capabilities.Resolver contra plans-features.
type Resolver struct {
	client   *Client
	allowAll bool
}

// NewResolver crea un resolver. allowAll (ALLOW_ALL_CAPABILITIES) responde true
// sin llamar a upstream (modo dev / fallback).
func NewResolver(client *Client, allowAll bool) *Resolver {
	return &Resolver{
		client:   client,
		allowAll: allowAll,
	}
}

// Has responde si userID tiene una capability.
func (r *Resolver) Has(ctx context.Context, userID string, capability string) (bool, error) {
	capability = strings.TrimSpace(capability)
	if capability == "" {
		return false, errors.New("capability required")
	}
	if r == nil {
		return false, ErrPlansNotConfigured
	}
	if r.allowAll {
		return true, nil
	}
	if !r.client.IsConfigured() {
		// preferimos fallar explícito en vez de permitir sin control
		return false, ErrPlansNotConfigured
	}

	resp, err := r.client.GetCapabilities(ctx, userID)
	if err != nil {
		return false, err
	}
	return resp.Capabilities[capability], nil
}
