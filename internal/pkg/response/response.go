package response

import (
	"AniHub/internal/api/dto"
	"AniHub/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	Created             = 201
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

// Success 成功返回封装，合并 success 标记和业务数据
func Success(c *gin.Context, data gin.H) {
	write(c, http.StatusOK, data)
}

// SuccessCreated 创建成功返回封装
func SuccessCreated(c *gin.Context, data gin.H) {
	write(c, http.StatusCreated, data)
}

func write(c *gin.Context, status int, data gin.H) {
	payload := gin.H{"success": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(status, payload)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = InternalServerError
		log.Error("Error", "err", err)
		Fail(c, status, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}
