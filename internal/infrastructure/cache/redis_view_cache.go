package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/pkg/config"
	"github.com/jhoicas/Facturas-api/pkg/logger"
)

var _ billing.ViewCache = (*RedisViewCache)(nil)

// keyPrefix separa las vistas cacheadas del resto de llaves en Redis.
const keyPrefix = "view:"

// RedisViewCache cache de vistas sobre Redis. Best-effort en las tres
// operaciones: cualquier error del cliente se loguea y la petición sigue
// como si la vista no estuviera cacheada.
type RedisViewCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisViewCache construye el cache. Hace un ping inicial solo para dejar
// registro del estado de la conexión; un Redis caído no impide arrancar.
func NewRedisViewCache(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) *RedisViewCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis no disponible; cache de vistas degradado")
	}
	return &RedisViewCache{client: client, log: log}
}

// Get devuelve el payload de la vista, si existe.
func (c *RedisViewCache) Get(ctx context.Context, path string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+path).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("path", path).Msg("cache get")
		}
		return nil, false
	}
	return payload, true
}

// Set guarda el payload con TTL de respaldo.
func (c *RedisViewCache) Set(ctx context.Context, path string, payload []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, keyPrefix+path, payload, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("cache set")
	}
}

// Invalidate borra la vista. DEL sobre una llave inexistente es un no-op,
// así que la operación es idempotente.
func (c *RedisViewCache) Invalidate(ctx context.Context, path string) {
	if err := c.client.Del(ctx, keyPrefix+path).Err(); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("cache invalidate")
	}
}

// Close cierra el cliente Redis.
func (c *RedisViewCache) Close() error {
	return c.client.Close()
}

// NopViewCache implementación nula para arrancar sin Redis (REDIS_ADDR vacío).
type NopViewCache struct{}

var _ billing.ViewCache = NopViewCache{}

func (NopViewCache) Get(ctx context.Context, path string) ([]byte, bool) { return nil, false }

func (NopViewCache) Set(ctx context.Context, path string, payload []byte, ttl time.Duration) {}

func (NopViewCache) Invalidate(ctx context.Context, path string) {}
