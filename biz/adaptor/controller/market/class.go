package market

import (
	"context"
	"encoding/json"
	"yoga-master/biz/adaptor"
	"yoga-master/biz/application/dto/market"
	"yoga-master/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateClasses 批量创建课程，请求体是裸JSON数组
func CreateClasses(ctx context.Context, c *app.RequestContext) {
	var raw []any
	body, err := c.Body()
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req := &market.CreateClassesReq{Classes: raw}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.ClassService.CreateClasses(ctx, req)
	adaptor.PostProcess(ctx, c, req, resp, err)
}

// ListClasses 课程列表，支持instructorEmail过滤
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var req market.ListClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ManageClasses 管理端课程列表，不带过滤
func ManageClasses(ctx context.Context, c *app.RequestContext) {
	req := &market.ListClassesReq{}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, req)
	adaptor.PostProcess(ctx, c, req, resp, err)
}

// ChangeClassStatus 更新课程审核状态
func ChangeClassStatus(ctx context.Context, c *app.RequestContext) {
	var req market.ChangeStatusReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.ClassService.ChangeClassStatus(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListApprovedClasses 审核通过的课程列表
func ListApprovedClasses(ctx context.Context, c *app.RequestContext) {
	req := &market.ListApprovedClassesReq{}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.ClassService.ListApprovedClasses(ctx, req)
	adaptor.PostProcess(ctx, c, req, resp, err)
}
