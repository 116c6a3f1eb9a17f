package dto

// ErrorResponse 统一失败响应体
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
