package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item 购物车条目，class_id在同一购物车内唯一
type Item struct {
	ClassID   string  `bson:"class_id" json:"classId"`
	ClassName string  `bson:"class_name" json:"className"`
	Price     float64 `bson:"price" json:"price"` // 加购时的快照价格，后续不随课程变动
	Quantity  int64   `bson:"quantity" json:"quantity"`
}

type Cart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"userId"`
	UserEmail  string             `bson:"user_email,omitempty" json:"userEmail"`
	Items      []*Item            `bson:"items" json:"items"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
