// Package cache guarda resultados de relatórios por tenant com expiração
package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrMiss = errors.New("cache miss")

// Store é o armazenamento chave/valor por trás do cache de resultados
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Key monta a chave {prefix}:{tenant}:{parts...}
func Key(prefix, tenantID string, parts ...string) string {
	segments := make([]string, 0, len(parts)+2)
	if prefix != "" {
		segments = append(segments, prefix)
	}
	segments = append(segments, tenantID)
	segments = append(segments, parts...)
	return strings.Join(segments, ":")
}
