package market

type CartItemInfo struct {
	ClassId   string  `json:"classId" form:"classId" query:"classId"`
	ClassName string  `json:"className" form:"className" query:"className"`
	Price     float64 `json:"price" form:"price" query:"price"`
	Quantity  int64   `json:"quantity" form:"quantity" query:"quantity"`
}

type CartInfo struct {
	Id         string          `json:"id" form:"id" query:"id"`
	UserId     string          `json:"userId" form:"userId" query:"userId"`
	UserEmail  string          `json:"userEmail,omitempty" form:"userEmail" query:"userEmail"`
	Items      []*CartItemInfo `json:"cartItems" form:"cartItems" query:"cartItems"`
	TotalPrice float64         `json:"totalPrice" form:"totalPrice" query:"totalPrice"`
}

type AddToCartReq struct {
	ClassId string `json:"classId" form:"classId"`
}

type AddToCartResp struct {
	Message string    `json:"message"`
	Cart    *CartInfo `json:"cart"`
}

type GetCartReq struct {
	UserId string `json:"-" path:"userId"`
}

type GetCartResp struct {
	Cart *CartInfo `json:"cart"`
}

type GetCartClassesReq struct {
	Email string `json:"-" path:"email"`
}

type GetCartClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
	Total   int64        `json:"total"`
}

type DeleteCartItemReq struct {
	ClassId string `json:"-" path:"id"`
}

type DeleteCartItemResp struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}
