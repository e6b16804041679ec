package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid  = errors.New("参数错误")
	ErrFileMissing   = errors.New("缺少上传文件")
	ErrFileTooLarge  = errors.New("文件超出大小限制")
	ErrCommentEmpty  = errors.New("评论内容不能为空")
	ErrAlreadyLiked  = errors.New("请勿重复点赞")
	ErrPostNotFound  = errors.New("帖子不存在")
	ErrStorageFailed = errors.New("文件存储失败")
	ErrPersistFailed = errors.New("数据写入失败")
	UnExpectedError  = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:  BadRequest,
	ErrFileMissing:   BadRequest,
	ErrFileTooLarge:  BadRequest,
	ErrCommentEmpty:  BadRequest,
	ErrAlreadyLiked:  BadRequest,
	ErrPostNotFound:  NotFound,
	ErrStorageFailed: InternalServerError,
	ErrPersistFailed: InternalServerError,
	UnExpectedError:  InternalServerError,
}
