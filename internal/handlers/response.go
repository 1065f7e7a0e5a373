package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

func successResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// nullResponse is the read-path absence value: success with explicit null
// data, never an error.
func nullResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

func errorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

func successWithMetaResponse(message string, data interface{}, meta interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

const (
	CARRIERS_CACHE_KEY     = "carriers:list"
	ACCESSORIALS_CACHE_KEY = "accessorials:list"
	CACHE_TTL_SHORT        = 5 * time.Minute
	CACHE_TTL_LONG         = 2 * time.Hour
)

// cacheGet loads a cached JSON payload into dest. A nil client or a miss
// just reports false; caching is best effort.
func cacheGet(ctx context.Context, rdb *redis.Client, key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func cacheSet(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = rdb.Set(ctx, key, raw, ttl)
}

func cacheDel(ctx context.Context, rdb *redis.Client, keys ...string) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, keys...)
}
