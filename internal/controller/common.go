package controller

import (
	"course_backend/internal/model"
	"course_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

// principal 读取已认证的调用方，缺失时直接返回 401
func principal(ctx *gin.Context) (model.Principal, bool) {
	p, ok := util.GetPrincipal(ctx)
	if !ok {
		util.Unauthorized(ctx)
	}
	return p, ok
}

// pathID 路径参数非法时直接返回 400
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := util.ParseIDParam(ctx, name)
	if err != nil {
		util.HandleError(ctx, err)
		return 0, false
	}
	return id, true
}

var timeLayouts = []string{time.RFC3339, util.TimeFormat, util.DateFormat}

// parseOptionalTime 接受 RFC3339、"2006-01-02 15:04:05" 或 "2006-01-02"
func parseOptionalTime(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, *raw, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, util.Validation("invalid %s %q", field, *raw)
}
