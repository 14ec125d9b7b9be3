package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"yoga-master/biz/application/dto/market"
	"yoga-master/biz/infrastructure/config"
	"yoga-master/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	approvedClassesCacheKey    = "approved_classes"
	approvedClassesCacheExpire = 300 // 5分钟
)

type IApprovedCacheMapper interface {
	Get(ctx context.Context) ([]*market.ClassInfo, error)
	Set(ctx context.Context, classes []*market.ClassInfo) error
	Delete(ctx context.Context) error
}

type ApprovedCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewApprovedCacheMapper(config *config.Config) *ApprovedCacheMapper {
	return &ApprovedCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取已审核通过的课程列表
func (m *ApprovedCacheMapper) Get(ctx context.Context) ([]*market.ClassInfo, error) {
	cachedData, err := m.rds.GetCtx(ctx, approvedClassesCacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var classes []*market.ClassInfo
	if err := json.Unmarshal([]byte(cachedData), &classes); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return classes, nil
}

// Set 将已审核通过的课程列表写入缓存
func (m *ApprovedCacheMapper) Set(ctx context.Context, classes []*market.ClassInfo) error {
	resultBytes, err := json.Marshal(classes)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, approvedClassesCacheKey, string(resultBytes), approvedClassesCacheExpire)
}

// Delete 审核状态变更后清除缓存
func (m *ApprovedCacheMapper) Delete(ctx context.Context) error {
	_, err := m.rds.DelCtx(ctx, approvedClassesCacheKey)
	return err
}
