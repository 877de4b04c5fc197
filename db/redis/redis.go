package redis

import (
	"context"
	"fmt"
	"movie_catalog/configs"

	"github.com/redis/go-redis/v9"
)

// NewClient returns a redis client for the cache layer. The client is handed
// to constructors explicitly, it is not a package singleton.
func NewClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	fmt.Println("====> [[MovieCatalog Redis Client:", pong, err, "]]")
	return client
}
