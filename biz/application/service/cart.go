package service

import (
	"context"
	"errors"
	"yoga-master/biz/adaptor"
	"yoga-master/biz/application/dto/market"
	"yoga-master/biz/infrastructure/consts"
	"yoga-master/biz/infrastructure/repository/cart"
	"yoga-master/biz/infrastructure/repository/class"
	"yoga-master/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type ICartService interface {
	AddToCart(ctx context.Context, req *market.AddToCartReq) (*market.AddToCartResp, error)
	GetCart(ctx context.Context, req *market.GetCartReq) (*market.GetCartResp, error)
	GetCartClasses(ctx context.Context, req *market.GetCartClassesReq) (*market.GetCartClassesResp, error)
	DeleteCartItem(ctx context.Context, req *market.DeleteCartItemReq) (*market.DeleteCartItemResp, error)
}

type CartService struct {
	CartMapper  cart.ICartMapper
	ClassMapper class.IClassMapper
}

var CartServiceSet = wire.NewSet(
	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),
)

// AddToCart 加购。先校验课程存在，再做两段式原子合并：
// 1. 条目已存在则数量加一；
// 2. 否则带$ne守护追加新条目（购物车不存在时一并upsert）；
// 3. 追加撞到并发写入的同一条目时回退到第1步。
// 全程没有读改写窗口，并发加购不会互相覆盖。
func (s *CartService) AddToCart(ctx context.Context, req *market.AddToCartReq) (*market.AddToCartResp, error) {
	if req.ClassId == "" {
		return nil, consts.ErrMissingClassId
	}

	meta := adaptor.ExtractUserMeta(ctx)
	userID := meta.GetUserId()
	if userID == "" {
		userID = consts.GuestUserID
	}

	// 课程不存在时绝不创建购物车
	cls, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		log.CtxError(ctx, "resolve class failed: %v", err)
		if errors.Is(err, consts.ErrClassNotFound) || errors.Is(err, consts.ErrInvalidObjectId) {
			return nil, err
		}
		return nil, consts.ErrAddToCart
	}

	merged := false
	for attempt := 0; attempt < consts.MaxMergeAttempts; attempt++ {
		matched, err := s.CartMapper.IncItemQuantity(ctx, userID, req.ClassId)
		if err != nil {
			log.CtxError(ctx, "increment cart item failed: %v", err)
			return nil, consts.ErrAddToCart
		}
		if matched {
			merged = true
			break
		}

		// 价格与名称在首次加购时快照，之后不再随课程刷新
		item := &cart.Item{
			ClassID:   req.ClassId,
			ClassName: cls.Name,
			Price:     cls.Price,
			Quantity:  1,
		}
		conflict, err := s.CartMapper.PushItem(ctx, userID, meta.GetEmail(), item)
		if err != nil {
			log.CtxError(ctx, "push cart item failed: %v", err)
			return nil, consts.ErrAddToCart
		}
		if !conflict {
			merged = true
			break
		}
	}
	// 重试耗尽仍没落地就如实报错，不能假装加购成功
	if !merged {
		log.CtxError(ctx, "cart merge exhausted %d attempts, userID: %s, classId: %s",
			consts.MaxMergeAttempts, userID, req.ClassId)
		return nil, consts.ErrAddToCart
	}

	c, err := s.CartMapper.FindOneByUserID(ctx, userID)
	if err != nil {
		log.CtxError(ctx, "load cart after merge failed: %v", err)
		return nil, consts.ErrAddToCart
	}

	return &market.AddToCartResp{
		Message: "Class added to cart successfully!",
		Cart:    toCartInfo(c),
	}, nil
}

// GetCart 按用户id查询购物车
func (s *CartService) GetCart(ctx context.Context, req *market.GetCartReq) (*market.GetCartResp, error) {
	c, err := s.CartMapper.FindOneByUserID(ctx, req.UserId)
	if err != nil {
		log.CtxError(ctx, "get cart failed: %v", err)
		if errors.Is(err, consts.ErrCartNotFound) {
			return nil, err
		}
		return nil, consts.ErrGetCart
	}
	return &market.GetCartResp{
		Cart: toCartInfo(c),
	}, nil
}

// GetCartClasses 按邮箱取购物车引用的课程详情（只读联查）。
// 没有购物车时返回空列表而不是报错
func (s *CartService) GetCartClasses(ctx context.Context, req *market.GetCartClassesReq) (*market.GetCartClassesResp, error) {
	c, err := s.CartMapper.FindOneByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, consts.ErrCartNotFound) {
			return &market.GetCartClassesResp{Classes: []*market.ClassInfo{}}, nil
		}
		log.CtxError(ctx, "get cart by email failed: %v", err)
		return nil, consts.ErrGetCart
	}

	classIds := lo.Map(c.Items, func(item *cart.Item, _ int) string {
		return item.ClassID
	})
	classes, err := s.ClassMapper.FindManyByIDs(ctx, classIds)
	if err != nil {
		log.CtxError(ctx, "resolve cart classes failed: %v", err)
		return nil, consts.ErrGetCart
	}

	infos := make([]*market.ClassInfo, 0, len(classes))
	for _, cls := range classes {
		infos = append(infos, toClassInfo(cls))
	}
	return &market.GetCartClassesResp{
		Classes: infos,
		Total:   int64(len(infos)),
	}, nil
}

// DeleteCartItem 从当前用户购物车摘除一个课程条目
func (s *CartService) DeleteCartItem(ctx context.Context, req *market.DeleteCartItemReq) (*market.DeleteCartItemResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	userID := meta.GetUserId()
	if userID == "" {
		userID = consts.GuestUserID
	}

	deleted, err := s.CartMapper.RemoveItem(ctx, userID, req.ClassId)
	if err != nil {
		log.CtxError(ctx, "delete cart item failed: %v", err)
		return nil, consts.ErrRemoveCartItem
	}

	return &market.DeleteCartItemResp{
		Message:      "Cart item deleted",
		DeletedCount: deleted,
	}, nil
}

func toCartInfo(c *cart.Cart) *market.CartInfo {
	items := lo.Map(c.Items, func(item *cart.Item, _ int) *market.CartItemInfo {
		return &market.CartItemInfo{
			ClassId:   item.ClassID,
			ClassName: item.ClassName,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	})
	return &market.CartInfo{
		Id:         c.ID.Hex(),
		UserId:     c.UserID,
		UserEmail:  c.UserEmail,
		Items:      items,
		TotalPrice: cartTotal(c.Items),
	}
}

// cartTotal 购物车总价在读取时计算，不落库
func cartTotal(items []*cart.Item) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
