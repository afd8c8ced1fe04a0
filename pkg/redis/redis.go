package redis

import (
	"YogaPoseAPI/internal/entity"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis caches finished score records by report ID so repeated report
// lookups skip Postgres. A cache miss returns redis.Nil wrapped in the error.
type IRedis interface {
	SetReport(ctx context.Context, record *entity.ScoreRecord, expiration time.Duration) error
	GetReport(ctx context.Context, reportID string) (*entity.ScoreRecord, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func reportKey(reportID string) string {
	return "score_report:" + reportID
}

func (r *redisClient) SetReport(ctx context.Context, record *entity.ScoreRecord, expiration time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, reportKey(record.ID), payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching report %s: %v", record.ID, err))
		return err
	}

	return nil
}

func (r *redisClient) GetReport(ctx context.Context, reportID string) (*entity.ScoreRecord, error) {
	val, err := r.client.Get(ctx, reportKey(reportID)).Bytes()
	if err != nil {
		return nil, err
	}

	var record entity.ScoreRecord
	if err := json.Unmarshal(val, &record); err != nil {
		return nil, err
	}

	return &record, nil
}
