package service

import (
	"context"
	"errors"
	"yoga-master/biz/application/dto/market"
	"yoga-master/biz/infrastructure/cache"
	"yoga-master/biz/infrastructure/consts"
	"yoga-master/biz/infrastructure/repository/class"
	"yoga-master/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/mapstructure"
)

type IClassService interface {
	CreateClasses(ctx context.Context, req *market.CreateClassesReq) (*market.CreateClassesResp, error)
	ListClasses(ctx context.Context, req *market.ListClassesReq) (*market.ListClassesResp, error)
	ListApprovedClasses(ctx context.Context, req *market.ListApprovedClassesReq) (*market.ListApprovedClassesResp, error)
	ChangeClassStatus(ctx context.Context, req *market.ChangeStatusReq) (*market.ChangeStatusResp, error)
}

type ClassService struct {
	ClassMapper   class.IClassMapper
	ApprovedCache cache.IApprovedCacheMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClasses 批量创建课程，整批一次插入
func (s *ClassService) CreateClasses(ctx context.Context, req *market.CreateClassesReq) (*market.CreateClassesResp, error) {
	if len(req.Classes) == 0 {
		return nil, consts.ErrInvalidParams
	}

	classes := make([]*class.Class, 0, len(req.Classes))
	for _, raw := range req.Classes {
		if _, ok := raw.(map[string]any); !ok {
			return nil, consts.ErrInvalidParams
		}
		var input market.ClassInput
		if err := mapstructure.WeakDecode(raw, &input); err != nil {
			log.CtxError(ctx, "decode class input failed: %v", err)
			return nil, consts.ErrInvalidParams
		}
		// 新建课程默认待审核
		status := input.Status
		if status == "" {
			status = consts.StatusPending
		}
		classes = append(classes, &class.Class{
			Name:            input.Name,
			Description:     input.Description,
			Image:           input.Image,
			VideoLink:       input.VideoLink,
			InstructorName:  input.InstructorName,
			InstructorEmail: input.InstructorEmail,
			Price:           input.Price,
			AvailableSeats:  input.AvailableSeats,
			Status:          status,
		})
	}

	ids, err := s.ClassMapper.InsertMany(ctx, classes)
	if err != nil {
		log.CtxError(ctx, "insert classes failed: %v", err)
		return nil, consts.ErrCreateClasses
	}

	return &market.CreateClassesResp{
		Message:     "Classes inserted successfully",
		InsertedIds: ids,
	}, nil
}

// ListClasses 课程列表，可按讲师邮箱过滤
func (s *ClassService) ListClasses(ctx context.Context, req *market.ListClassesReq) (*market.ListClassesResp, error) {
	var classes []*class.Class
	var err error
	if req.InstructorEmail != nil && *req.InstructorEmail != "" {
		classes, err = s.ClassMapper.FindByInstructor(ctx, *req.InstructorEmail)
	} else {
		classes, err = s.ClassMapper.FindAll(ctx)
	}
	if err != nil {
		log.CtxError(ctx, "list classes failed: %v", err)
		return nil, consts.ErrListClasses
	}

	infos := make([]*market.ClassInfo, 0, len(classes))
	for _, c := range classes {
		infos = append(infos, toClassInfo(c))
	}
	return &market.ListClassesResp{
		Classes: infos,
		Total:   int64(len(infos)),
	}, nil
}

// ListApprovedClasses 审核通过的课程列表，带redis读穿缓存
func (s *ClassService) ListApprovedClasses(ctx context.Context, req *market.ListApprovedClassesReq) (*market.ListApprovedClassesResp, error) {
	if cached, err := s.ApprovedCache.Get(ctx); err == nil && len(cached) > 0 {
		return &market.ListApprovedClassesResp{
			Classes: cached,
			Total:   int64(len(cached)),
		}, nil
	}

	classes, err := s.ClassMapper.FindByStatus(ctx, consts.StatusActive)
	if err != nil {
		log.CtxError(ctx, "list approved classes failed: %v", err)
		return nil, consts.ErrListClasses
	}
	if len(classes) == 0 {
		return nil, consts.ErrNoApprovedClasses
	}

	infos := make([]*market.ClassInfo, 0, len(classes))
	for _, c := range classes {
		infos = append(infos, toClassInfo(c))
	}

	if err := s.ApprovedCache.Set(ctx, infos); err != nil {
		log.CtxError(ctx, "cache approved classes failed: %v", err)
	}

	return &market.ListApprovedClassesResp{
		Classes: infos,
		Total:   int64(len(infos)),
	}, nil
}

// ChangeClassStatus 更新审核状态。状态值不做枚举校验，reason无条件覆盖，
// 包括置为Active时，与既有审批行为保持一致
func (s *ClassService) ChangeClassStatus(ctx context.Context, req *market.ChangeStatusReq) (*market.ChangeStatusResp, error) {
	err := s.ClassMapper.UpdateStatus(ctx, req.Id, req.Status, req.Reason)
	if err != nil {
		log.CtxError(ctx, "update class status failed: %v", err)
		if errors.Is(err, consts.ErrClassNotFound) || errors.Is(err, consts.ErrInvalidObjectId) {
			return nil, err
		}
		return nil, consts.ErrUpdateStatus
	}

	// 审核结果变化，清掉已通过课程的缓存
	if err := s.ApprovedCache.Delete(ctx); err != nil {
		log.CtxError(ctx, "invalidate approved classes cache failed: %v", err)
	}

	return &market.ChangeStatusResp{
		Message: "Class status updated successfully",
	}, nil
}

func toClassInfo(c *class.Class) *market.ClassInfo {
	info := new(market.ClassInfo)
	_ = copier.Copy(info, c)
	info.Id = c.ID.Hex()
	info.CreateTime = c.CreateTime.Unix()
	return info
}
