package provider

import (
	"yoga-master/biz/application/service"
	"yoga-master/biz/infrastructure/cache"
	"yoga-master/biz/infrastructure/config"
	"yoga-master/biz/infrastructure/repository/cart"
	"yoga-master/biz/infrastructure/repository/class"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config       *config.Config
	ClassService service.IClassService
	CartService  service.ICartService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.ClassServiceSet,
	service.CartServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	class.NewMongoMapper,
	wire.Bind(new(class.IClassMapper), new(*class.MongoMapper)),
	cart.NewMongoMapper,
	wire.Bind(new(cart.ICartMapper), new(*cart.MongoMapper)),
	cache.NewApprovedCacheMapper,
	wire.Bind(new(cache.IApprovedCacheMapper), new(*cache.ApprovedCacheMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
