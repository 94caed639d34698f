package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Store 仓储公用的连接与单次操作超时
type Store struct {
	DB           *gorm.DB
	QueryTimeout time.Duration
}

func NewStore(db *gorm.DB, queryTimeout time.Duration) Store {
	return Store{DB: db, QueryTimeout: queryTimeout}
}

// session 返回绑定超时上下文的连接，调用方负责 cancel
func (s Store) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if s.QueryTimeout <= 0 {
		return s.DB.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, s.QueryTimeout)
	return s.DB.WithContext(ctx), cancel
}

// detachedSession 不随调用方取消的连接，用于必须完整执行的事务
func (s Store) detachedSession(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	return s.session(context.WithoutCancel(ctx))
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// column 部分更新时的一列；列名只来自代码常量
type column struct {
	name  string
	value interface{}
}

func buildSet(cols []column, now time.Time) (string, []interface{}) {
	set := ""
	args := make([]interface{}, 0, len(cols)+1)
	for _, c := range cols {
		set += c.name + " = ?, "
		args = append(args, c.value)
	}
	set += "updated_at = ?"
	args = append(args, now)
	return set, args
}

// referenceRow 题目 ID 与其标准答案
type referenceRow struct {
	ID        uint
	Reference string
}
