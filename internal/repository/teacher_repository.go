package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"time"
)

type TeacherRepository struct {
	Store
}

func NewTeacherRepository(store Store) *TeacherRepository {
	return &TeacherRepository{Store: store}
}

func (r *TeacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	db, cancel := r.session(ctx)
	defer cancel()

	now := time.Now()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now
	if err := db.Create(teacher).Error; err != nil {
		if isDuplicateKey(err) {
			return util.ErrEmailRegistered
		}
		return util.Storage(err)
	}
	return nil
}

func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *TeacherRepository) FindByID(ctx context.Context, id uint) (*model.Teacher, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *TeacherRepository) findOne(ctx context.Context, where string, arg interface{}) (*model.Teacher, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var teacher model.Teacher
	res := db.Raw("SELECT id, first_name, last_name, email, password, skills, created_at, updated_at FROM teachers WHERE "+where+" LIMIT 1", arg).Scan(&teacher)
	if res.Error != nil {
		return nil, util.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, util.NotFound("teacher")
	}
	return &teacher, nil
}
