package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrEmailExist         = errors.New("邮箱已被注册")
	ErrUsernameExist      = errors.New("用户名已被占用")
	ErrCredentialsInvalid = errors.New("邮箱或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrTrackerDuplicate   = errors.New("该番剧已在追番列表中")
	ErrTrackerNotFound    = errors.New("追番记录不存在")
	ErrDiscussionNotFound = errors.New("讨论不存在")
	ErrCommentNotFound    = errors.New("评论不存在")
	ErrNotCommentAuthor   = errors.New("只能删除自己的评论")
	ErrAnimeNotFound      = errors.New("番剧不存在")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrEmailExist:         Conflict,
	ErrUsernameExist:      Conflict,
	ErrCredentialsInvalid: Unauthorized,
	ErrUserNotFound:       NotFound,
	ErrTrackerDuplicate:   Conflict,
	ErrTrackerNotFound:    NotFound,
	ErrDiscussionNotFound: NotFound,
	ErrCommentNotFound:    NotFound,
	ErrNotCommentAuthor:   Forbidden,
	ErrAnimeNotFound:      NotFound,
	UnExpectedError:       InternalServerError,
}
