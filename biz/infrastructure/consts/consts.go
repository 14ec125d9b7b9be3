package consts

// 数据库相关
const (
	ID              = "_id"
	UserID          = "user_id"
	UserEmail       = "user_email"
	Status          = "status"
	Reason          = "reason"
	Items           = "items"
	ItemClassID     = "items.class_id"
	InstructorEmail = "instructor_email"
	CreateTime      = "create_time"
	UpdateTime      = "update_time"
	NotEqual        = "$ne"
	In              = "$in"
)

// 审核状态
const (
	StatusPending  = "Pending"
	StatusActive   = "Active"
	StatusRejected = "Rejected"
)

// 默认值
const (
	GuestUserID      = "guest"
	MaxMergeAttempts = 3
)
