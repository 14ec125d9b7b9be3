package class

import (
	"context"
	"errors"
	"time"
	"yoga-master/biz/infrastructure/config"
	"yoga-master/biz/infrastructure/consts"
	"yoga-master/biz/infrastructure/util/log"

	"github.com/samber/lo"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "classes"
)

type IClassMapper interface {
	InsertMany(ctx context.Context, classes []*Class) ([]string, error)
	FindOne(ctx context.Context, id string) (*Class, error)
	FindAll(ctx context.Context) ([]*Class, error)
	FindByInstructor(ctx context.Context, email string) ([]*Class, error)
	FindByStatus(ctx context.Context, status string) ([]*Class, error)
	FindManyByIDs(ctx context.Context, ids []string) ([]*Class, error)
	UpdateStatus(ctx context.Context, id, status, reason string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper config: %v, collection: %s", config, ClassCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) InsertMany(ctx context.Context, classes []*Class) ([]string, error) {
	now := time.Now()
	docs := make([]any, 0, len(classes))
	for _, c := range classes {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
			c.CreateTime = now
			c.UpdateTime = now
		}
		docs = append(docs, c)
	}

	result, err := m.conn.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	ids := lo.FilterMap(result.InsertedIDs, func(id any, _ int) (string, bool) {
		oid, ok := id.(primitive.ObjectID)
		return oid.Hex(), ok
	})
	return ids, nil
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrClassNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Class, error) {
	return m.find(ctx, bson.M{})
}

func (m *MongoMapper) FindByInstructor(ctx context.Context, email string) ([]*Class, error) {
	return m.find(ctx, bson.M{consts.InstructorEmail: email})
}

func (m *MongoMapper) FindByStatus(ctx context.Context, status string) ([]*Class, error) {
	return m.find(ctx, bson.M{consts.Status: status})
}

// FindManyByIDs 根据id集合批量查询，非法id直接跳过
func (m *MongoMapper) FindManyByIDs(ctx context.Context, ids []string) ([]*Class, error) {
	oids := lo.FilterMap(ids, func(id string, _ int) (primitive.ObjectID, bool) {
		oid, err := primitive.ObjectIDFromHex(id)
		return oid, err == nil
	})
	if len(oids) == 0 {
		return []*Class{}, nil
	}
	return m.find(ctx, bson.M{consts.ID: bson.M{consts.In: oids}})
}

// UpdateStatus 更新审核状态与原因，未命中返回ErrClassNotFound
func (m *MongoMapper) UpdateStatus(ctx context.Context, id, status, reason string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	result, err := m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$set": bson.M{
			consts.Status:     status,
			consts.Reason:     reason,
			consts.UpdateTime: time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return consts.ErrClassNotFound
	}
	return nil
}

func (m *MongoMapper) find(ctx context.Context, filter bson.M) ([]*Class, error) {
	var classes []*Class
	err := m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}
