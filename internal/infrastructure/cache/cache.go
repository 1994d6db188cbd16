package cache

import (
	"context"
	"time"
)

// ReportCache cache de respuestas de reportes/dashboard ya serializadas.
// Los agregados cambian poco en segundos; un TTL corto evita repetir las
// consultas de agregación en cada refresh de la UI.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// NoopReportCache implementación nula para entornos sin Redis.
type NoopReportCache struct{}

func (NoopReportCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
