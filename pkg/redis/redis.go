package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Nil error del cliente cuando la clave no existe
const Nil = redis.Nil

// RedisClient estructura para manejar conexiones con Redis
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient crea una nueva instancia del cliente Redis
func NewRedisClient(addr, password string, db int) *RedisClient {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	// Verificar conexión
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("❌ Error conectando a Redis: %v", err)
	}

	log.Println("✅ Conexión exitosa a Redis")

	return &RedisClient{
		client: rdb,
		ctx:    ctx,
	}
}

// Get obtiene el valor de una clave
func (r *RedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Set guarda un valor con TTL opcional (0 = sin expiración)
func (r *RedisClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Delete elimina una o más claves
func (r *RedisClient) Delete(keys ...string) error {
	return r.client.Del(r.ctx, keys...).Err()
}

// AddToSet agrega un miembro a un conjunto
func (r *RedisClient) AddToSet(key, member string) error {
	return r.client.SAdd(r.ctx, key, member).Err()
}

// RemoveFromSet elimina un miembro de un conjunto
func (r *RedisClient) RemoveFromSet(key, member string) error {
	return r.client.SRem(r.ctx, key, member).Err()
}

// GetSetMembers obtiene todos los miembros de un conjunto
func (r *RedisClient) GetSetMembers(key string) ([]string, error) {
	return r.client.SMembers(r.ctx, key).Result()
}

// GetKeysByPattern obtiene las claves que coinciden con un patrón
func (r *RedisClient) GetKeysByPattern(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Increment incrementa un contador y devuelve el nuevo valor
func (r *RedisClient) Increment(key string) (int64, error) {
	return r.client.Incr(r.ctx, key).Result()
}

// GetCounter obtiene un contador; 0 si no existe
func (r *RedisClient) GetCounter(key string) (int64, error) {
	value, err := r.client.Get(r.ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return value, err
}

// PushToList agrega al frente de una lista y la recorta al tamaño máximo
func (r *RedisClient) PushToList(key, value string, maxLen int64) error {
	if err := r.client.LPush(r.ctx, key, value).Err(); err != nil {
		return err
	}
	return r.client.LTrim(r.ctx, key, 0, maxLen-1).Err()
}

// GetListRange obtiene un rango de una lista
func (r *RedisClient) GetListRange(key string, start, stop int64) ([]string, error) {
	return r.client.LRange(r.ctx, key, start, stop).Result()
}

// HealthCheck verifica que Redis esté funcionando
func (r *RedisClient) HealthCheck() error {
	_, err := r.client.Ping(r.ctx).Result()
	if err != nil {
		return fmt.Errorf("redis health check failed: %v", err)
	}
	return nil
}

// Close cierra la conexión con Redis
func (r *RedisClient) Close() error {
	return r.client.Close()
}
