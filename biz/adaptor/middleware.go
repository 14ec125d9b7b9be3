package adaptor

import (
	"context"
	"time"
	"yoga-master/biz/infrastructure/config"
	"yoga-master/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const requestIDHeader = "X-Request-Id"

// RequestID 为每个请求补充请求id，透传调用方已有的id
func RequestID() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		id := string(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)
		c.Next(ctx)
	}
}

// AccessLog 访问日志，NoLogPaths内的路径不记录
func AccessLog(cfg *config.Config) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)
		path := string(c.Path())
		if lo.Contains(cfg.Log.NoLogPaths, path) {
			return
		}
		log.CtxInfo(ctx, "%s %s %d cost=%v", c.Method(), path, c.Response.StatusCode(), time.Since(start))
	}
}
