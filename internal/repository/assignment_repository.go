package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	Store
}

func NewAssignmentRepository(store Store) *AssignmentRepository {
	return &AssignmentRepository{Store: store}
}

type AssignmentUpdate struct {
	Name      *string
	CourseID  *uint
	StartDate *time.Time
	EndDate   *time.Time
}

func (u AssignmentUpdate) columns() []column {
	var cols []column
	if u.Name != nil {
		cols = append(cols, column{"name", *u.Name})
	}
	if u.CourseID != nil {
		cols = append(cols, column{"course_id", *u.CourseID})
	}
	if u.StartDate != nil {
		cols = append(cols, column{"start_date", *u.StartDate})
	}
	if u.EndDate != nil {
		cols = append(cols, column{"end_date", *u.EndDate})
	}
	return cols
}

// AssignmentQuestionChange 批量修改题目中的一项；Action 为 delete 时只看 ID
type AssignmentQuestionChange struct {
	Action   QuestionAction
	ID       uint
	Question *string
	Answer   *string
}

const (
	assignmentColumns         = "id, teacher_id, course_id, name, start_date, end_date, created_at, updated_at, deleted_at"
	assignmentQuestionColumns = "id, assignment_id, question, answer, created_at, updated_at, deleted_at"
)

func (r *AssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	db, cancel := r.session(ctx)
	defer cancel()

	questions := assignment.Questions
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].AssignmentID = assignment.ID
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return util.Storage(err)
	}
	assignment.Questions = questions
	return nil
}

// List courseID 为 nil 时返回全部
func (r *AssignmentRepository) List(ctx context.Context, teacherID *uint, courseID *uint) ([]model.Assignment, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	query := "SELECT " + assignmentColumns + " FROM assignments WHERE deleted_at IS NULL"
	var args []interface{}
	if teacherID != nil {
		query += " AND teacher_id = ?"
		args = append(args, *teacherID)
	}
	if courseID != nil {
		query += " AND course_id = ?"
		args = append(args, *courseID)
	}
	query += " ORDER BY id"

	var assignments []model.Assignment
	if err := db.Raw(query, args...).Scan(&assignments).Error; err != nil {
		return nil, util.Storage(err)
	}
	if len(assignments) == 0 {
		return []model.Assignment{}, nil
	}

	ids := make([]uint, len(assignments))
	for i := range assignments {
		ids[i] = assignments[i].ID
	}
	byParent, err := r.liveQuestions(db, ids)
	if err != nil {
		return nil, util.Storage(err)
	}
	for i := range assignments {
		assignments[i].Questions = byParent[assignments[i].ID]
		if assignments[i].Questions == nil {
			assignments[i].Questions = []model.AssignmentQuestion{}
		}
	}
	return assignments, nil
}

func (r *AssignmentRepository) liveQuestions(db *gorm.DB, assignmentIDs []uint) (map[uint][]model.AssignmentQuestion, error) {
	var questions []model.AssignmentQuestion
	err := db.Raw(
		"SELECT "+assignmentQuestionColumns+" FROM assignment_questions WHERE assignment_id IN ? AND deleted_at IS NULL ORDER BY id",
		assignmentIDs,
	).Scan(&questions).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint][]model.AssignmentQuestion, len(assignmentIDs))
	for _, q := range questions {
		out[q.AssignmentID] = append(out[q.AssignmentID], q)
	}
	return out, nil
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id uint) (*model.Assignment, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var assignment model.Assignment
	res := db.Raw("SELECT "+assignmentColumns+" FROM assignments WHERE id = ? AND deleted_at IS NULL", id).Scan(&assignment)
	if res.Error != nil {
		return nil, util.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, util.NotFound("assignment %d", id)
	}

	byParent, err := r.liveQuestions(db, []uint{id})
	if err != nil {
		return nil, util.Storage(err)
	}
	assignment.Questions = byParent[id]
	if assignment.Questions == nil {
		assignment.Questions = []model.AssignmentQuestion{}
	}
	return &assignment, nil
}

func (r *AssignmentRepository) Update(ctx context.Context, id uint, u AssignmentUpdate) error {
	db, cancel := r.session(ctx)
	defer cancel()

	return util.Storage(updateParent(db, "assignments", id, u.columns(), time.Now()))
}

// ApplyQuestionChanges 在一个事务中执行全部新增、修改、删除，任一失败全部回滚
func (r *AssignmentRepository) ApplyQuestionChanges(ctx context.Context, assignmentID uint, changes []AssignmentQuestionChange) ([]model.AssignmentQuestion, error) {
	db, cancel := r.detachedSession(ctx)
	defer cancel()

	var created []model.AssignmentQuestion
	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := assignmentQuestionTable.requireLiveParent(tx, assignmentID); err != nil {
			return err
		}
		for _, ch := range changes {
			switch ch.Action {
			case ActionCreate:
				q := model.AssignmentQuestion{AssignmentID: assignmentID}
				if ch.Question != nil {
					q.Question = *ch.Question
				}
				if ch.Answer != nil {
					q.Answer = *ch.Answer
				}
				if err := tx.Create(&q).Error; err != nil {
					return err
				}
				created = append(created, q)
			case ActionUpdate:
				var cols []column
				if ch.Question != nil {
					cols = append(cols, column{"question", *ch.Question})
				}
				if ch.Answer != nil {
					cols = append(cols, column{"answer", *ch.Answer})
				}
				if err := assignmentQuestionTable.updateChild(tx, assignmentID, ch.ID, cols, now); err != nil {
					return err
				}
			case ActionDelete:
				if err := assignmentQuestionTable.deleteChild(tx, assignmentID, ch.ID, now); err != nil {
					return err
				}
			default:
				return util.Validation("unknown action %q", ch.Action)
			}
		}
		return nil
	})
	if err != nil {
		return nil, util.Storage(err)
	}
	if created == nil {
		created = []model.AssignmentQuestion{}
	}
	return created, nil
}

// FindReferenceAnswers 返回题目 ID 到参考答案的映射，只包含未删除作业下未删除的题目
func (r *AssignmentRepository) FindReferenceAnswers(ctx context.Context, assignmentID uint, questionIDs []uint) (map[uint]string, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []referenceRow
	err := db.Raw(`
		SELECT q.id, q.answer AS reference
		FROM assignment_questions q
		INNER JOIN assignments a ON a.id = q.assignment_id
		WHERE q.assignment_id = ? AND q.id IN ? AND q.deleted_at IS NULL AND a.deleted_at IS NULL
	`, assignmentID, questionIDs).Scan(&rows).Error
	if err != nil {
		return nil, util.Storage(err)
	}

	refs := make(map[uint]string, len(rows))
	for _, row := range rows {
		refs[row.ID] = row.Reference
	}
	return refs, nil
}
