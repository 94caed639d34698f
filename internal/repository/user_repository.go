package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"time"
)

type UserRepository struct {
	Store
}

func NewUserRepository(store Store) *UserRepository {
	return &UserRepository{Store: store}
}

// Create 邮箱重复返回 ErrEmailRegistered
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	db, cancel := r.session(ctx)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return util.ErrEmailRegistered
		}
		return util.Storage(err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg interface{}) (*model.User, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var user model.User
	res := db.Raw("SELECT id, first_name, last_name, email, password, created_at, updated_at FROM users WHERE "+where+" LIMIT 1", arg).Scan(&user)
	if res.Error != nil {
		return nil, util.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, util.NotFound("user")
	}
	return &user, nil
}
