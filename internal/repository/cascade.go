package repository

import (
	"context"
	"course_backend/internal/util"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ParentKind 可级联软删除的父实体
type ParentKind int

const (
	KindCourse ParentKind = iota + 1
	KindAssignment
	KindQuiz
)

type cascadeTarget struct {
	parentTable string
	childTable  string
	foreignKey  string
}

var cascadeTargets = map[ParentKind]cascadeTarget{
	KindCourse:     {parentTable: "courses", childTable: "course_urls", foreignKey: "course_id"},
	KindAssignment: {parentTable: "assignments", childTable: "assignment_questions", foreignKey: "assignment_id"},
	KindQuiz:       {parentTable: "quizzes", childTable: "quiz_questions", foreignKey: "quiz_id"},
}

func (k ParentKind) String() string {
	switch k {
	case KindCourse:
		return "course"
	case KindAssignment:
		return "assignment"
	case KindQuiz:
		return "quiz"
	default:
		return fmt.Sprintf("ParentKind(%d)", int(k))
	}
}

type CascadeRepository struct {
	Store
	now func() time.Time
}

func NewCascadeRepository(store Store) *CascadeRepository {
	return &CascadeRepository{Store: store, now: time.Now}
}

// SoftDelete 在同一事务中标记父记录及其所有未删除的直接子记录。
// 父记录不存在或已删除时返回 ErrNotFound 且不做任何修改。
// 事务不随 ctx 取消，只受查询超时约束。
func (r *CascadeRepository) SoftDelete(ctx context.Context, kind ParentKind, parentID uint) error {
	target, ok := cascadeTargets[kind]
	if !ok {
		return util.Validation("unknown parent kind %d", int(kind))
	}

	db, cancel := r.detachedSession(ctx)
	defer cancel()

	now := r.now()
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			"UPDATE "+target.parentTable+" SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
			now, parentID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.NotFound("%s %d", kind, parentID)
		}

		return tx.Exec(
			"UPDATE "+target.childTable+" SET deleted_at = ? WHERE "+target.foreignKey+" = ? AND deleted_at IS NULL",
			now, parentID,
		).Error
	})
	return util.Storage(err)
}
