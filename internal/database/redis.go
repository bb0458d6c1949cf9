package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// InitRedis initializes the redis client used for the token revocation list.
// The service runs fine without redis, so a failed connection returns nil
// instead of an error.
func InitRedis(log zerolog.Logger) *redis.Client {
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	addr := viper.GetString("redis.host") + ":" + viper.GetString("redis.port")
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis connection failed, continuing without redis")
		return nil
	}

	log.Info().Str("addr", addr).Msg("redis connection established")
	return rdb
}
