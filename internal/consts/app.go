package consts

const (
	ApplicationName    = "UFSBD CMS Server"
	ApplicationVersion = "v1.0.0"
)

// gin.Context 中保存当前请求身份的键
const (
	ContextUserID = "id"
	ContextEmail  = "email"
	ContextRole   = "role"
)
