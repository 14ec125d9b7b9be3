package adaptor

import (
	"context"
	"yoga-master/biz/infrastructure/util"
	"yoga-master/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	hertzconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一回写响应，按错误码映射HTTP状态
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	if err == nil {
		c.JSON(hertzconsts.StatusOK, resp)
		return
	}

	s, _ := status.FromError(err)
	c.JSON(httpCode(s.Code()), map[string]any{
		"code":    int64(s.Code()),
		"message": s.Message(),
	})
}

func httpCode(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return hertzconsts.StatusBadRequest
	case codes.NotFound:
		return hertzconsts.StatusNotFound
	case codes.PermissionDenied:
		return hertzconsts.StatusForbidden
	default:
		return hertzconsts.StatusInternalServerError
	}
}
