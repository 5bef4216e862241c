package dto

// ValidateFileRequest 上传前的文件信息
type ValidateFileRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}
