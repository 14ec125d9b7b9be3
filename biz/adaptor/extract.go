package adaptor

import (
	"context"
	"errors"
	"yoga-master/biz/application/dto/basic"
	"yoga-master/biz/infrastructure/config"
	"yoga-master/biz/infrastructure/util"
	"yoga-master/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cast"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractUserMeta 从请求头解析用户身份，解析失败返回空的meta（按游客处理）
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	tokenString := c.GetHeader("Authorization")
	if len(tokenString) == 0 {
		return
	}
	token, err := jwt.Parse(string(tokenString), func(_ *jwt.Token) (interface{}, error) {
		return jwt.ParseECPublicKeyFromPEM([]byte(config.GetConfig().Auth.PublicKey))
	})
	if err != nil {
		return
	}
	if !token.Valid {
		err = errors.New("token is not valid")
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		err = errors.New("unexpected claims type")
		return
	}
	user = metaFromClaims(claims)
	log.CtxInfo(ctx, "userMeta=%s", util.JSONF(user))
	return
}

// metaFromClaims 把弱类型的claims转成UserMeta。
// JSON数字在MapClaims里是float64，缺失的键取零值
func metaFromClaims(claims jwt.MapClaims) *basic.UserMeta {
	return &basic.UserMeta{
		UserId:   cast.ToString(claims["userId"]),
		Email:    cast.ToString(claims["email"]),
		AppId:    cast.ToInt64(claims["appId"]),
		DeviceId: cast.ToString(claims["deviceId"]),
	}
}
