package redis

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/genrerec/internal/domain"
	"github.com/davidbz/genrerec/internal/observability"
)

const bytesPerFloat64 = 8

// MatrixCache stores similarity matrices in Redis hashes keyed by catalog fingerprint.
type MatrixCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewMatrixCache creates a new Redis matrix cache. A zero ttl keeps entries forever.
func NewMatrixCache(client *redis.Client, prefix string, ttl time.Duration) (*MatrixCache, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if prefix == "" {
		prefix = "genrerec:matrix"
	}

	return &MatrixCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

// Key returns the Redis key for a fingerprint.
func (c *MatrixCache) Key(fingerprint string) string {
	return fmt.Sprintf("%s:%s", c.prefix, fingerprint)
}

// Get loads the matrix stored under the fingerprint or returns domain.ErrCacheMiss.
func (c *MatrixCache) Get(ctx context.Context, fingerprint string) (*domain.Matrix, error) {
	logger := observability.FromContext(ctx)
	key := c.Key(fingerprint)

	fields, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		logger.Error("matrix lookup failed",
			observability.String("key", key),
			observability.Error(err))
		return nil, fmt.Errorf("failed to load matrix: %w", err)
	}

	if len(fields) == 0 {
		observability.RecordCacheMiss(c.Name())
		return nil, domain.ErrCacheMiss
	}

	size, err := strconv.Atoi(fields["size"])
	if err != nil {
		return nil, fmt.Errorf("invalid matrix size for %s: %w", key, err)
	}

	m, err := bytesToMatrix(size, []byte(fields["matrix"]))
	if err != nil {
		return nil, fmt.Errorf("invalid matrix payload for %s: %w", key, err)
	}

	observability.RecordCacheHit(c.Name())
	logger.Debug("matrix loaded from redis",
		observability.String("key", key),
		observability.Int("size", size))

	return m, nil
}

// Set stores the matrix under the fingerprint.
func (c *MatrixCache) Set(ctx context.Context, fingerprint string, matrix *domain.Matrix) error {
	if matrix == nil {
		return errors.New("matrix cannot be nil")
	}

	logger := observability.FromContext(ctx)
	key := c.Key(fingerprint)

	pipe := c.client.Pipeline()

	pipe.HSet(ctx, key,
		"size", matrix.Size(),
		"matrix", matrixToBytes(matrix),
		"indexed_at", time.Now().Unix(),
	)

	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}

	if _, execErr := pipe.Exec(ctx); execErr != nil {
		logger.Error("matrix store failed",
			observability.String("key", key),
			observability.Error(execErr))
		return fmt.Errorf("failed to store matrix: %w", execErr)
	}

	logger.Debug("matrix stored in redis",
		observability.String("key", key),
		observability.Int("size", matrix.Size()))
	return nil
}

// Name returns the cache backend identifier.
func (c *MatrixCache) Name() string {
	return "redis"
}

// matrixToBytes encodes the row-major values as little-endian float64.
func matrixToBytes(m *domain.Matrix) []byte {
	values := m.Values()
	buf := make([]byte, len(values)*bytesPerFloat64)

	for i, f := range values {
		binary.LittleEndian.PutUint64(buf[i*bytesPerFloat64:], math.Float64bits(f))
	}

	return buf
}

func bytesToMatrix(size int, buf []byte) (*domain.Matrix, error) {
	if len(buf)%bytesPerFloat64 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of %d", len(buf), bytesPerFloat64)
	}

	values := make([]float64, len(buf)/bytesPerFloat64)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*bytesPerFloat64:]))
	}

	return domain.NewMatrix(size, values)
}

var _ domain.MatrixCache = (*MatrixCache)(nil)
