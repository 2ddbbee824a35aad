package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"exam_platform_backend/internal/model"
	"exam_platform_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const examSchemaKeyPrefix = "exam:questions:"

// ExamSchemaCache keeps an exam's question slots in redis. The schema is
// immutable once submissions start arriving, so a short TTL plus explicit
// invalidation on attach is enough. Grading results are never cached. A nil
// client degrades to a pure miss, which keeps the database as the source of
// truth when redis is unavailable.
type ExamSchemaCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewExamSchemaCache(rdb *redis.Client, ttl time.Duration) *ExamSchemaCache {
	return &ExamSchemaCache{rdb: rdb, ttl: ttl}
}

func (c *ExamSchemaCache) Get(ctx context.Context, examID uint) ([]model.ExamQuestion, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, c.key(examID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Log.Warn("exam schema cache read failed", zap.Uint("examId", examID), zap.Error(err))
		return nil, false
	}

	var slots []model.ExamQuestion
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *ExamSchemaCache) Put(ctx context.Context, examID uint, slots []model.ExamQuestion) {
	if c == nil || c.rdb == nil {
		return
	}

	val, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(examID), val, c.ttl).Err(); err != nil {
		logger.Log.Warn("exam schema cache write failed", zap.Uint("examId", examID), zap.Error(err))
	}
}

func (c *ExamSchemaCache) Invalidate(ctx context.Context, examID uint) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.key(examID)).Err(); err != nil {
		logger.Log.Warn("exam schema cache invalidation failed", zap.Uint("examId", examID), zap.Error(err))
	}
}

func (c *ExamSchemaCache) key(examID uint) string {
	return fmt.Sprintf("%s%d", examSchemaKeyPrefix, examID)
}
