package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"yoga-master/biz/application/dto/market"
	"yoga-master/biz/infrastructure/consts"
	"yoga-master/biz/infrastructure/repository/class"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeClassMapper struct {
	mu      sync.Mutex
	classes map[string]*class.Class
}

func newFakeClassMapper() *fakeClassMapper {
	return &fakeClassMapper{classes: make(map[string]*class.Class)}
}

func (f *fakeClassMapper) add(c *class.Class) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.classes[c.ID.Hex()] = c
	return c.ID.Hex()
}

func (f *fakeClassMapper) setPrice(id string, price float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.classes[id].Price = price
}

func (f *fakeClassMapper) InsertMany(ctx context.Context, classes []*class.Class) ([]string, error) {
	ids := make([]string, 0, len(classes))
	for _, c := range classes {
		ids = append(ids, f.add(c))
	}
	return ids, nil
}

func (f *fakeClassMapper) FindOne(ctx context.Context, id string) (*class.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.classes[id]
	if !ok {
		return nil, consts.ErrClassNotFound
	}
	return c, nil
}

func (f *fakeClassMapper) FindAll(ctx context.Context) ([]*class.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*class.Class, 0, len(f.classes))
	for _, c := range f.classes {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeClassMapper) FindByInstructor(ctx context.Context, email string) ([]*class.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*class.Class
	for _, c := range f.classes {
		if c.InstructorEmail == email {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeClassMapper) FindByStatus(ctx context.Context, status string) ([]*class.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*class.Class
	for _, c := range f.classes {
		if c.Status == status {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeClassMapper) FindManyByIDs(ctx context.Context, ids []string) ([]*class.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*class.Class
	for _, id := range ids {
		if c, ok := f.classes[id]; ok {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeClassMapper) UpdateStatus(ctx context.Context, id, status, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrClassNotFound
	}
	c.Status = status
	c.Reason = reason
	return nil
}

// fakeApprovedCache 记录缓存交互，Get永远miss
type fakeApprovedCache struct {
	stored  []*market.ClassInfo
	deleted int
}

func (f *fakeApprovedCache) Get(ctx context.Context) ([]*market.ClassInfo, error) {
	return nil, errors.New("cache miss")
}

func (f *fakeApprovedCache) Set(ctx context.Context, classes []*market.ClassInfo) error {
	f.stored = classes
	return nil
}

func (f *fakeApprovedCache) Delete(ctx context.Context) error {
	f.deleted++
	return nil
}

func newClassTestService(t *testing.T) (*ClassService, *fakeClassMapper, *fakeApprovedCache) {
	t.Helper()
	classes := newFakeClassMapper()
	cache := &fakeApprovedCache{}
	svc := &ClassService{
		ClassMapper:   classes,
		ApprovedCache: cache,
	}
	return svc, classes, cache
}

func TestCreateClassesDefaultsToPending(t *testing.T) {
	svc, classes, _ := newClassTestService(t)

	resp, err := svc.CreateClasses(context.Background(), &market.CreateClassesReq{
		Classes: []any{
			map[string]any{
				"name":            "Hatha Basics",
				"price":           "49.9", // 宽松解码，字符串数字也接受
				"instructorEmail": "yogi@example.com",
				"availableSeats":  20,
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.InsertedIds, 1)

	stored, err := classes.FindOne(context.Background(), resp.InsertedIds[0])
	require.NoError(t, err)
	require.Equal(t, consts.StatusPending, stored.Status)
	require.InDelta(t, 49.9, stored.Price, 1e-9)
	require.EqualValues(t, 20, stored.AvailableSeats)
}

func TestCreateClassesRejectsBadInput(t *testing.T) {
	svc, classes, _ := newClassTestService(t)

	_, err := svc.CreateClasses(context.Background(), &market.CreateClassesReq{Classes: []any{}})
	require.ErrorIs(t, err, consts.ErrInvalidParams)

	_, err = svc.CreateClasses(context.Background(), &market.CreateClassesReq{
		Classes: []any{"not an object"},
	})
	require.ErrorIs(t, err, consts.ErrInvalidParams)
	require.Empty(t, classes.classes)
}

func TestListClassesInstructorFilter(t *testing.T) {
	svc, classes, _ := newClassTestService(t)
	classes.add(&class.Class{Name: "Hatha Basics", InstructorEmail: "a@example.com"})
	classes.add(&class.Class{Name: "Vinyasa Flow", InstructorEmail: "a@example.com"})
	classes.add(&class.Class{Name: "Yin Evening", InstructorEmail: "b@example.com"})

	email := "a@example.com"
	resp, err := svc.ListClasses(context.Background(), &market.ListClassesReq{InstructorEmail: &email})
	require.NoError(t, err)
	require.EqualValues(t, 2, resp.Total)

	resp, err = svc.ListClasses(context.Background(), &market.ListClassesReq{})
	require.NoError(t, err)
	require.EqualValues(t, 3, resp.Total)
}

func TestListApprovedClasses(t *testing.T) {
	svc, classes, cache := newClassTestService(t)

	// 没有已通过课程时是404语义，不是空列表
	_, err := svc.ListApprovedClasses(context.Background(), &market.ListApprovedClassesReq{})
	require.ErrorIs(t, err, consts.ErrNoApprovedClasses)

	classes.add(&class.Class{Name: "Hatha Basics", Status: consts.StatusActive})
	classes.add(&class.Class{Name: "Draft", Status: consts.StatusPending})

	resp, err := svc.ListApprovedClasses(context.Background(), &market.ListApprovedClassesReq{})
	require.NoError(t, err)
	require.EqualValues(t, 1, resp.Total)
	require.Equal(t, consts.StatusActive, resp.Classes[0].Status)
	require.Len(t, cache.stored, 1)
}

func TestChangeClassStatusUnknownId(t *testing.T) {
	svc, classes, cache := newClassTestService(t)
	classes.add(&class.Class{Name: "Hatha Basics", Status: consts.StatusPending})

	_, err := svc.ChangeClassStatus(context.Background(), &market.ChangeStatusReq{
		Id:     primitive.NewObjectID().Hex(),
		Status: consts.StatusActive,
	})
	require.ErrorIs(t, err, consts.ErrClassNotFound)
	require.Zero(t, cache.deleted)
	for _, c := range classes.classes {
		require.Equal(t, consts.StatusPending, c.Status)
	}
}

func TestChangeClassStatusTouchesOnlyStatusAndReason(t *testing.T) {
	svc, classes, cache := newClassTestService(t)
	id := classes.add(&class.Class{
		Name:            "Hatha Basics",
		InstructorEmail: "a@example.com",
		Price:           49.9,
		Status:          consts.StatusPending,
	})

	resp, err := svc.ChangeClassStatus(context.Background(), &market.ChangeStatusReq{
		Id:     id,
		Status: consts.StatusRejected,
		Reason: "incomplete description",
	})
	require.NoError(t, err)
	require.Equal(t, "Class status updated successfully", resp.Message)
	require.Equal(t, 1, cache.deleted)

	stored, err := classes.FindOne(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, consts.StatusRejected, stored.Status)
	require.Equal(t, "incomplete description", stored.Reason)
	require.Equal(t, "Hatha Basics", stored.Name)
	require.Equal(t, "a@example.com", stored.InstructorEmail)
	require.InDelta(t, 49.9, stored.Price, 1e-9)

	// 置回Active时reason同样被整体覆盖
	_, err = svc.ChangeClassStatus(context.Background(), &market.ChangeStatusReq{
		Id:     id,
		Status: consts.StatusActive,
	})
	require.NoError(t, err)
	stored, err = classes.FindOne(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, consts.StatusActive, stored.Status)
	require.Empty(t, stored.Reason)
}
