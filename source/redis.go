package source

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// scanBatch is the number of keys requested per SCAN page.
const scanBatch = 100

// Redis lists the keys of a Redis database via SCAN.
type Redis struct {
	client  *redis.Client
	context context.Context
}

// RedisArgs are the arguments for creating a new Redis source.
type RedisArgs struct {
	Client  *redis.Client   // Optional. The Redis client to use. If not provided, a client is built with default options (localhost:6379).
	Context context.Context // Optional. The context to use for Redis operations. If not provided, defaults to context.Background().
}

// NewRedis creates a new source which lists keys in Redis.
func NewRedis(args RedisArgs) (*Redis, error) {
	if args.Context == nil {
		args.Context = context.Background()
	}
	if args.Client == nil {
		args.Client = redis.NewClient(&redis.Options{})
	}
	return &Redis{client: args.Client, context: args.Context}, nil
}

// List lists all keys in the database with the given prefix. The prefix is
// used verbatim as the fixed head of a SCAN MATCH glob, so it must not
// contain glob metacharacters.
func (r *Redis) List(prefix string) ([]Key, error) {
	var keys []Key
	var cursor uint64
	for {
		batch, next, err := r.client.Scan(r.context, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}
