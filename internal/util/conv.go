package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 读取路径参数中的正整数 ID
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, Validation("invalid %s", name)
	}
	return uint(id), nil
}

// ParseOptionalUintQuery 查询参数缺省时返回 nil
func ParseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, Validation("invalid %s", name)
	}
	v := uint(id)
	return &v, nil
}
