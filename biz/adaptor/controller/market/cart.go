package market

import (
	"context"
	"yoga-master/biz/adaptor"
	"yoga-master/biz/application/dto/market"
	"yoga-master/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// AddToCart 加购
func AddToCart(ctx context.Context, c *app.RequestContext) {
	var req market.AddToCartReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.CartService.AddToCart(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetCart 按用户id查询购物车
func GetCart(ctx context.Context, c *app.RequestContext) {
	var req market.GetCartReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.CartService.GetCart(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetCartClasses 按邮箱取购物车关联的课程
func GetCartClasses(ctx context.Context, c *app.RequestContext) {
	var req market.GetCartClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.CartService.GetCartClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteCartItem 删除购物车条目
func DeleteCartItem(ctx context.Context, c *app.RequestContext) {
	var req market.DeleteCartItemReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.CartService.DeleteCartItem(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
