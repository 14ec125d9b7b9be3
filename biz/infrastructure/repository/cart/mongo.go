package cart

import (
	"context"
	"errors"
	"time"
	"yoga-master/biz/infrastructure/config"
	"yoga-master/biz/infrastructure/consts"
	"yoga-master/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixCartCacheKey = "cache:cart"
	CartCollectionName = "cart"
)

type ICartMapper interface {
	FindOneByUserID(ctx context.Context, userID string) (*Cart, error)
	FindOneByEmail(ctx context.Context, email string) (*Cart, error)
	IncItemQuantity(ctx context.Context, userID, classID string) (bool, error)
	PushItem(ctx context.Context, userID, email string, item *Item) (bool, error)
	RemoveItem(ctx context.Context, userID, classID string) (int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewCartMongoMapper config: %v, collection: %s", config, CartCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CartCollectionName, config.Cache)
	m := &MongoMapper{
		conn: conn,
	}
	m.mustEnsureIndexes()
	return m
}

// mustEnsureIndexes 购物车按user_id唯一。PushItem的$ne守护upsert依赖
// 这个唯一索引把并发的首次加购压成一次插入，其余写入撞索引走冲突回退，
// 所以索引建不出来时直接终止启动
func (m *MongoMapper) mustEnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := m.conn.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: consts.UserID, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		panic(err)
	}
}

func (m *MongoMapper) FindOneByUserID(ctx context.Context, userID string) (*Cart, error) {
	var c Cart
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.UserID: userID,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrCartNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*Cart, error) {
	var c Cart
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.UserEmail: email,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrCartNotFound
	default:
		return nil, err
	}
}

// IncItemQuantity 对已有条目的数量加一，单条原子更新。
// 返回是否命中了已有条目。
func (m *MongoMapper) IncItemQuantity(ctx context.Context, userID, classID string) (bool, error) {
	result, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.UserID:      userID,
		consts.ItemClassID: classID,
	}, bson.M{
		"$inc": bson.M{"items.$.quantity": 1},
		"$set": bson.M{consts.UpdateTime: time.Now()},
	})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// PushItem 追加新条目并在购物车不存在时插入购物车文档。
// 过滤条件带class_id的$ne守护：并发下另一写者先插入了同一条目时，
// upsert会撞user_id唯一索引，此时返回conflict让调用方回退到加一。
func (m *MongoMapper) PushItem(ctx context.Context, userID, email string, item *Item) (bool, error) {
	now := time.Now()
	_, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.UserID:      userID,
		consts.ItemClassID: bson.M{consts.NotEqual: item.ClassID},
	}, bson.M{
		"$push": bson.M{consts.Items: item},
		"$set":  bson.M{consts.UpdateTime: now},
		"$setOnInsert": bson.M{
			consts.ID:         primitive.NewObjectID(),
			consts.UserEmail:  email,
			consts.CreateTime: now,
		},
	}, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// RemoveItem 从购物车数组中摘除指定课程的条目
func (m *MongoMapper) RemoveItem(ctx context.Context, userID, classID string) (int64, error) {
	// 这里不顺手更新update_time：$pull没摘到条目时文档不能算被修改，
	// 返回的ModifiedCount要如实反映摘除数量
	result, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.UserID: userID,
	}, bson.M{
		"$pull": bson.M{consts.Items: bson.M{"class_id": classID}},
	})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
