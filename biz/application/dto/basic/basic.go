package basic

// UserMeta 请求携带的用户身份信息，允许为空（游客）
type UserMeta struct {
	UserId   string `json:"userId"`
	Email    string `json:"email"`
	AppId    int64  `json:"appId"`
	DeviceId string `json:"deviceId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetEmail() string {
	if m == nil {
		return ""
	}
	return m.Email
}
