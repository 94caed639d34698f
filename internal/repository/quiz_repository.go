package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type QuizRepository struct {
	Store
}

func NewQuizRepository(store Store) *QuizRepository {
	return &QuizRepository{Store: store}
}

type QuizUpdate struct {
	Name      *string
	CourseID  *uint
	StartTime *time.Time
	EndTime   *time.Time
}

func (u QuizUpdate) columns() []column {
	var cols []column
	if u.Name != nil {
		cols = append(cols, column{"name", *u.Name})
	}
	if u.CourseID != nil {
		cols = append(cols, column{"course_id", *u.CourseID})
	}
	if u.StartTime != nil {
		cols = append(cols, column{"start_time", *u.StartTime})
	}
	if u.EndTime != nil {
		cols = append(cols, column{"end_time", *u.EndTime})
	}
	return cols
}

// QuizQuestionChange Options 不为 nil 时整体替换选项
type QuizQuestionChange struct {
	Action        QuestionAction
	ID            uint
	Question      *string
	Options       []string
	Answer        *string
	CorrectAnswer *string
}

const (
	quizColumns         = "id, teacher_id, course_id, name, start_time, end_time, created_at, updated_at, deleted_at"
	quizQuestionColumns = "id, quiz_id, question, options, answer, correct_answer, created_at, updated_at, deleted_at"
)

func (r *QuizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	db, cancel := r.session(ctx)
	defer cancel()

	questions := quiz.Questions
	for i := range questions {
		encoded, err := model.EncodeOptions(questions[i].OptionList)
		if err != nil {
			return util.Validation("invalid options: %v", err)
		}
		questions[i].Options = encoded
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return util.Storage(err)
	}
	quiz.Questions = questions
	return nil
}

func (r *QuizRepository) List(ctx context.Context, teacherID *uint, courseID *uint) ([]model.Quiz, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	query := "SELECT " + quizColumns + " FROM quizzes WHERE deleted_at IS NULL"
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

	var quizzes []model.Quiz
	if err := db.Raw(query, args...).Scan(&quizzes).Error; err != nil {
		return nil, util.Storage(err)
	}
	if len(quizzes) == 0 {
		return []model.Quiz{}, nil
	}

	ids := make([]uint, len(quizzes))
	for i := range quizzes {
		ids[i] = quizzes[i].ID
	}
	byParent, err := r.liveQuestions(db, ids)
	if err != nil {
		return nil, util.Storage(err)
	}
	for i := range quizzes {
		quizzes[i].Questions = byParent[quizzes[i].ID]
		if quizzes[i].Questions == nil {
			quizzes[i].Questions = []model.QuizQuestion{}
		}
	}
	return quizzes, nil
}

func (r *QuizRepository) liveQuestions(db *gorm.DB, quizIDs []uint) (map[uint][]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := db.Raw(
		"SELECT "+quizQuestionColumns+" FROM quiz_questions WHERE quiz_id IN ? AND deleted_at IS NULL ORDER BY id",
		quizIDs,
	).Scan(&questions).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint][]model.QuizQuestion, len(quizIDs))
	for _, q := range questions {
		q.DecodeOptions()
		out[q.QuizID] = append(out[q.QuizID], q)
	}
	return out, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var quiz model.Quiz
	res := db.Raw("SELECT "+quizColumns+" FROM quizzes WHERE id = ? AND deleted_at IS NULL", id).Scan(&quiz)
	if res.Error != nil {
		return nil, util.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, util.NotFound("quiz %d", id)
	}

	byParent, err := r.liveQuestions(db, []uint{id})
	if err != nil {
		return nil, util.Storage(err)
	}
	quiz.Questions = byParent[id]
	if quiz.Questions == nil {
		quiz.Questions = []model.QuizQuestion{}
	}
	return &quiz, nil
}

func (r *QuizRepository) Update(ctx context.Context, id uint, u QuizUpdate) error {
	db, cancel := r.session(ctx)
	defer cancel()

	return util.Storage(updateParent(db, "quizzes", id, u.columns(), time.Now()))
}

func (r *QuizRepository) ApplyQuestionChanges(ctx context.Context, quizID uint, changes []QuizQuestionChange) ([]model.QuizQuestion, error) {
	db, cancel := r.detachedSession(ctx)
	defer cancel()

	var created []model.QuizQuestion
	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := quizQuestionTable.requireLiveParent(tx, quizID); err != nil {
			return err
		}
		for _, ch := range changes {
			switch ch.Action {
			case ActionCreate:
				q := model.QuizQuestion{QuizID: quizID, OptionList: ch.Options}
				if ch.Question != nil {
					q.Question = *ch.Question
				}
				if ch.Answer != nil {
					q.Answer = *ch.Answer
				}
				if ch.CorrectAnswer != nil {
					q.CorrectAnswer = *ch.CorrectAnswer
				}
				encoded, err := model.EncodeOptions(ch.Options)
				if err != nil {
					return util.Validation("invalid options: %v", err)
				}
				q.Options = encoded
				if err := tx.Create(&q).Error; err != nil {
					return err
				}
				q.DecodeOptions()
				created = append(created, q)
			case ActionUpdate:
				var cols []column
				if ch.Question != nil {
					cols = append(cols, column{"question", *ch.Question})
				}
				if ch.Options != nil {
					encoded, err := model.EncodeOptions(ch.Options)
					if err != nil {
						return util.Validation("invalid options: %v", err)
					}
					cols = append(cols, column{"options", encoded})
				}
				if ch.Answer != nil {
					cols = append(cols, column{"answer", *ch.Answer})
				}
				if ch.CorrectAnswer != nil {
					cols = append(cols, column{"correct_answer", *ch.CorrectAnswer})
				}
				if err := quizQuestionTable.updateChild(tx, quizID, ch.ID, cols, now); err != nil {
					return err
				}
			case ActionDelete:
				if err := quizQuestionTable.deleteChild(tx, quizID, ch.ID, now); err != nil {
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
		created = []model.QuizQuestion{}
	}
	return created, nil
}

// FindCorrectOptions 返回题目 ID 到正确选项的映射，只包含未删除测验下未删除的题目
func (r *QuizRepository) FindCorrectOptions(ctx context.Context, quizID uint, questionIDs []uint) (map[uint]string, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []referenceRow
	err := db.Raw(`
		SELECT q.id, q.correct_answer AS reference
		FROM quiz_questions q
		INNER JOIN quizzes z ON z.id = q.quiz_id
		WHERE q.quiz_id = ? AND q.id IN ? AND q.deleted_at IS NULL AND z.deleted_at IS NULL
	`, quizID, questionIDs).Scan(&rows).Error
	if err != nil {
		return nil, util.Storage(err)
	}

	refs := make(map[uint]string, len(rows))
	for _, row := range rows {
		refs[row.ID] = row.Reference
	}
	return refs, nil
}
