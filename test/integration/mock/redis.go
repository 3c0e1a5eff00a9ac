package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is an in-process Redis shared by every scenario. It backs the
// maintenance lock.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

var (
	redisOnce sync.Once
	redisConn *Redis
)

func NewRedis() *Redis {
	redisOnce.Do(func() {
		redisConn = openRedis()
	})
	return redisConn
}

func openRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return &Redis{
		Server: server,
		Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
	}
}

// ClearRedis drops every key, releasing any maintenance lock a failed
// scenario left behind.
func ClearRedis(r *Redis) {
	r.Server.FlushAll()
}
