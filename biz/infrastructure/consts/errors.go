package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrCreateClasses     = NewErrno(codes.Code(1001), errors.New("error inserting classes"))
	ErrListClasses       = NewErrno(codes.Code(1002), errors.New("error retrieving classes"))
	ErrUpdateStatus      = NewErrno(codes.Code(1003), errors.New("error updating status"))
	ErrAddToCart         = NewErrno(codes.Code(1004), errors.New("error adding class to cart"))
	ErrGetCart           = NewErrno(codes.Code(1005), errors.New("error retrieving cart"))
	ErrRemoveCartItem    = NewErrno(codes.Code(1006), errors.New("error deleting cart item"))
	ErrClassNotFound     = NewErrno(codes.NotFound, errors.New("class not found"))
	ErrCartNotFound      = NewErrno(codes.NotFound, errors.New("cart not found for this user"))
	ErrNoApprovedClasses = NewErrno(codes.NotFound, errors.New("no approved classes found"))
	ErrMissingClassId    = NewErrno(codes.InvalidArgument, errors.New("classId is required"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid object id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("update failed"))
)
