package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	Store
}

func NewSubmissionRepository(store Store) *SubmissionRepository {
	return &SubmissionRepository{Store: store}
}

// InsertAssignmentSubmissions 同一事务内先检查重复提交，再一次性批量插入
func (r *SubmissionRepository) InsertAssignmentSubmissions(ctx context.Context, rows []model.AssignmentSubmission) error {
	if len(rows) == 0 {
		return util.Validation("no submissions")
	}
	questionIDs := make([]uint, len(rows))
	for i, row := range rows {
		questionIDs[i] = row.AssignmentQuestionID
	}
	return r.insertBatch(ctx, "assignment_submissions", "assignment_question_id", rows[0].UserID, questionIDs, &rows)
}

func (r *SubmissionRepository) InsertQuizSubmissions(ctx context.Context, rows []model.QuizSubmission) error {
	if len(rows) == 0 {
		return util.Validation("no submissions")
	}
	questionIDs := make([]uint, len(rows))
	for i, row := range rows {
		questionIDs[i] = row.QuizQuestionID
	}
	return r.insertBatch(ctx, "quiz_submissions", "quiz_question_id", rows[0].UserID, questionIDs, &rows)
}

func (r *SubmissionRepository) insertBatch(ctx context.Context, table, questionColumn string, userID uint, questionIDs []uint, rows interface{}) error {
	db, cancel := r.detachedSession(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		err := tx.Raw(
			"SELECT COUNT(*) FROM "+table+" WHERE user_id = ? AND "+questionColumn+" IN ?",
			userID, questionIDs,
		).Scan(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return util.Conflict("%d of the questions were already answered", existing)
		}

		if err := tx.Create(rows).Error; err != nil {
			if isDuplicateKey(err) {
				return util.Conflict("questions already answered")
			}
			return err
		}
		return nil
	})
	return util.Storage(err)
}

// ListAssignmentSubmissions 教师查看某作业的全部提交，附带学生信息
func (r *SubmissionRepository) ListAssignmentSubmissions(ctx context.Context, assignmentID uint) ([]model.SubmissionRow, error) {
	return r.listWithUsers(ctx, `
		SELECT s.id, s.user_id, s.assignment_id AS parent_id, s.assignment_question_id AS question_id,
			s.answer, s.submitted_at, s.score, u.first_name, u.last_name, u.email
		FROM assignment_submissions s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.assignment_id = ?
		ORDER BY s.user_id, s.assignment_question_id
	`, assignmentID)
}

func (r *SubmissionRepository) ListQuizSubmissions(ctx context.Context, quizID uint) ([]model.SubmissionRow, error) {
	return r.listWithUsers(ctx, `
		SELECT s.id, s.user_id, s.quiz_id AS parent_id, s.quiz_question_id AS question_id,
			s.answer, s.submitted_at, s.score, u.first_name, u.last_name, u.email
		FROM quiz_submissions s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.quiz_id = ?
		ORDER BY s.user_id, s.quiz_question_id
	`, quizID)
}

func (r *SubmissionRepository) listWithUsers(ctx context.Context, query string, parentID uint) ([]model.SubmissionRow, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []model.SubmissionRow
	if err := db.Raw(query, parentID).Scan(&rows).Error; err != nil {
		return nil, util.Storage(err)
	}
	if rows == nil {
		rows = []model.SubmissionRow{}
	}
	return rows, nil
}

// ListUserAssignmentSubmissions 学生查看自己的作业成绩
func (r *SubmissionRepository) ListUserAssignmentSubmissions(ctx context.Context, userID, assignmentID uint) ([]model.AssignmentSubmission, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []model.AssignmentSubmission
	err := db.Raw(`
		SELECT id, user_id, assignment_id, assignment_question_id, answer, submitted_at, score
		FROM assignment_submissions
		WHERE user_id = ? AND assignment_id = ?
		ORDER BY assignment_question_id
	`, userID, assignmentID).Scan(&rows).Error
	if err != nil {
		return nil, util.Storage(err)
	}
	if rows == nil {
		rows = []model.AssignmentSubmission{}
	}
	return rows, nil
}

func (r *SubmissionRepository) ListUserQuizSubmissions(ctx context.Context, userID, quizID uint) ([]model.QuizSubmission, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []model.QuizSubmission
	err := db.Raw(`
		SELECT id, user_id, quiz_id, quiz_question_id, answer, submitted_at, score
		FROM quiz_submissions
		WHERE user_id = ? AND quiz_id = ?
		ORDER BY quiz_question_id
	`, userID, quizID).Scan(&rows).Error
	if err != nil {
		return nil, util.Storage(err)
	}
	if rows == nil {
		rows = []model.QuizSubmission{}
	}
	return rows, nil
}
