package main

import (
	handler "yoga-master/biz/adaptor/controller"
	"yoga-master/biz/adaptor/controller/market"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	// 课程目录
	r.POST("/new-class", market.CreateClasses)
	r.GET("/classes", market.ListClasses)
	r.GET("/classes-manage", market.ManageClasses)
	r.PATCH("/change-status/:id", market.ChangeClassStatus)
	r.GET("/approved-classes", market.ListApprovedClasses)

	// 购物车
	r.POST("/add-to-cart", market.AddToCart)
	r.GET("/get-cart/:userId", market.GetCart)
	r.GET("/cart/:email", market.GetCartClasses)
	r.DELETE("/delete-cart-item/:id", market.DeleteCartItem)
}
