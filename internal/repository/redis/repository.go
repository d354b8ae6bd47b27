// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusops/emptyrooms/internal/config"
	"github.com/campusops/emptyrooms/internal/models"
	"github.com/campusops/emptyrooms/internal/repository"
)

// ErrNotFound is the shared repository sentinel for a record set that
// has not been stored yet
var ErrNotFound = repository.ErrNotFound

func init() {
	repository.RegisterRedis(func(cfg config.RedisConfig) (repository.Repository, error) {
		return NewRepository(cfg)
	})
}

const (
	assignmentsKey = "assignments"
	scheduleKey    = "schedule"
)

// Repository implements the repository interface with Redis storage
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.RecordTTL,
	}, nil
}

// Close releases the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) key(name string) string {
	return r.keyPrefix + name
}

// save marshals a record set to JSON and stores it under the given key
func (r *Repository) save(ctx context.Context, name string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := r.client.Set(ctx, r.key(name), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}
	return nil
}

// load fetches and unmarshals a record set from the given key
func (r *Repository) load(ctx context.Context, name string, records any) error {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetch %s: %w", name, err)
	}
	if err := json.Unmarshal(data, records); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}

// SaveAssignments replaces the stored room assignments
func (r *Repository) SaveAssignments(ctx context.Context, assignments []models.RoomAssignment) error {
	if assignments == nil {
		assignments = []models.RoomAssignment{}
	}
	return r.save(ctx, assignmentsKey, assignments)
}

// GetAssignments returns the stored room assignments
func (r *Repository) GetAssignments(ctx context.Context) ([]models.RoomAssignment, error) {
	var assignments []models.RoomAssignment
	if err := r.load(ctx, assignmentsKey, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// SaveScheduleEntries replaces the stored schedule entries
func (r *Repository) SaveScheduleEntries(ctx context.Context, entries []models.ScheduleEntry) error {
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	return r.save(ctx, scheduleKey, entries)
}

// GetScheduleEntries returns the stored schedule entries
func (r *Repository) GetScheduleEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	if err := r.load(ctx, scheduleKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear drops both stored record sets
func (r *Repository) Clear(ctx context.Context) error {
	keys := []string{r.key(assignmentsKey), r.key(scheduleKey)}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}
