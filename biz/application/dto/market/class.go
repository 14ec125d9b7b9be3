package market

type ClassInfo struct {
	Id              string  `json:"id" form:"id" query:"id"`
	Name            string  `json:"name" form:"name" query:"name"`
	Description     string  `json:"description" form:"description" query:"description"`
	Image           string  `json:"image" form:"image" query:"image"`
	VideoLink       string  `json:"videoLink" form:"videoLink" query:"videoLink"`
	InstructorName  string  `json:"instructorName" form:"instructorName" query:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" form:"instructorEmail" query:"instructorEmail"`
	Price           float64 `json:"price" form:"price" query:"price"`
	AvailableSeats  int64   `json:"availableSeats" form:"availableSeats" query:"availableSeats"`
	TotalEnrolled   int64   `json:"totalEnrolled" form:"totalEnrolled" query:"totalEnrolled"`
	Status          string  `json:"status" form:"status" query:"status"`
	Reason          string  `json:"reason" form:"reason" query:"reason"`
	CreateTime      int64   `json:"createTime" form:"createTime" query:"createTime"`
}

// ClassInput 新建课程的输入，经mapstructure宽松解码
type ClassInput struct {
	Name            string  `json:"name" mapstructure:"name"`
	Description     string  `json:"description" mapstructure:"description"`
	Image           string  `json:"image" mapstructure:"image"`
	VideoLink       string  `json:"videoLink" mapstructure:"videoLink"`
	InstructorName  string  `json:"instructorName" mapstructure:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" mapstructure:"instructorEmail"`
	Price           float64 `json:"price" mapstructure:"price"`
	AvailableSeats  int64   `json:"availableSeats" mapstructure:"availableSeats"`
	Status          string  `json:"status" mapstructure:"status"`
}

type CreateClassesReq struct {
	Classes []any `json:"classes"`
}

type CreateClassesResp struct {
	Message     string   `json:"message"`
	InsertedIds []string `json:"insertedIds"`
}

type ListClassesReq struct {
	InstructorEmail *string `json:"instructorEmail,omitempty" form:"instructorEmail" query:"instructorEmail"`
}

type ListClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
	Total   int64        `json:"total"`
}

type ChangeStatusReq struct {
	Id     string `json:"-" path:"id"`
	Status string `json:"status" form:"status"`
	Reason string `json:"reason" form:"reason"`
}

type ChangeStatusResp struct {
	Message string `json:"message"`
}

type ListApprovedClassesReq struct {
}

type ListApprovedClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
	Total   int64        `json:"total"`
}
