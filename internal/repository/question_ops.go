package repository

import (
	"course_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type QuestionAction string

const (
	ActionCreate QuestionAction = "create"
	ActionUpdate QuestionAction = "update"
	ActionDelete QuestionAction = "delete"
)

func (a QuestionAction) Valid() bool {
	return a == ActionCreate || a == ActionUpdate || a == ActionDelete
}

// childTable 描述某类题目所在的表及其外键
type childTable struct {
	table      string
	foreignKey string
	parent     string
}

var (
	assignmentQuestionTable = childTable{table: "assignment_questions", foreignKey: "assignment_id", parent: "assignments"}
	quizQuestionTable       = childTable{table: "quiz_questions", foreignKey: "quiz_id", parent: "quizzes"}
	courseURLTable          = childTable{table: "course_urls", foreignKey: "course_id", parent: "courses"}
)

// requireLiveParent 父记录不存在或已删除时返回 ErrNotFound
func (c childTable) requireLiveParent(tx *gorm.DB, parentID uint) error {
	var count int64
	if err := tx.Raw("SELECT COUNT(*) FROM "+c.parent+" WHERE id = ? AND deleted_at IS NULL", parentID).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return util.NotFound("%s %d", c.parent, parentID)
	}
	return nil
}

// updateChild 只更新属于 parentID 的未删除子项
func (c childTable) updateChild(tx *gorm.DB, parentID, id uint, cols []column, now time.Time) error {
	set, args := buildSet(cols, now)
	args = append(args, id, parentID)
	res := tx.Exec("UPDATE "+c.table+" SET "+set+" WHERE id = ? AND "+c.foreignKey+" = ? AND deleted_at IS NULL", args...)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.NotFound("%s %d", c.table, id)
	}
	return nil
}

// deleteChild 单独软删除一个子项，父记录保持不变
func (c childTable) deleteChild(tx *gorm.DB, parentID, id uint, now time.Time) error {
	res := tx.Exec("UPDATE "+c.table+" SET deleted_at = ? WHERE id = ? AND "+c.foreignKey+" = ? AND deleted_at IS NULL", now, id, parentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.NotFound("%s %d", c.table, id)
	}
	return nil
}

// updateParent 部分更新父记录，cols 为空时只刷新 updated_at
func updateParent(tx *gorm.DB, table string, id uint, cols []column, now time.Time) error {
	set, args := buildSet(cols, now)
	args = append(args, id)
	res := tx.Exec("UPDATE "+table+" SET "+set+" WHERE id = ? AND deleted_at IS NULL", args...)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.NotFound("%s %d", table, id)
	}
	return nil
}
