package service

import (
	"context"
	"course_backend/internal/config"
	"course_backend/internal/model"
	"course_backend/internal/repository"
	"course_backend/internal/util"
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var alphaName = regexp.MustCompile(`^[A-Za-z]+$`)

type AuthService struct {
	TeacherRepo *repository.TeacherRepository
	UserRepo    *repository.UserRepository
	Denylist    *repository.TokenDenylist
	Cfg         *config.Config
}

func NewAuthService(teacherRepo *repository.TeacherRepository, userRepo *repository.UserRepository, denylist *repository.TokenDenylist, cfg *config.Config) *AuthService {
	return &AuthService{
		TeacherRepo: teacherRepo,
		UserRepo:    userRepo,
		Denylist:    denylist,
		Cfg:         cfg,
	}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Kind      model.AccountKind
	Skills    string
}

type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	UserID    uint              `json:"userId"`
	UserType  model.AccountKind `json:"userType"`
}

func (in SignupInput) validate() error {
	if !alphaName.MatchString(in.FirstName) || !alphaName.MatchString(in.LastName) {
		return util.Validation("first and last name must contain letters only")
	}
	if !in.Kind.Valid() {
		return util.Validation("userType must be teacher or user")
	}
	if in.Kind == model.KindTeacher && strings.TrimSpace(in.Skills) == "" {
		return util.Validation("skills are required for teachers")
	}
	if in.Password == "" {
		return util.Validation("password is required")
	}
	return nil
}

// Signup 按账号类型写入对应的表，同表邮箱重复返回 ErrEmailRegistered
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (model.Principal, error) {
	if err := in.validate(); err != nil {
		return model.Principal{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost())
	if err != nil {
		return model.Principal{}, err
	}

	base := model.AccountBase{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     strings.ToLower(in.Email),
		Password:  string(hashedPassword),
	}

	if in.Kind == model.KindTeacher {
		teacher := &model.Teacher{AccountBase: base, Skills: in.Skills}
		if err := s.TeacherRepo.Create(ctx, teacher); err != nil {
			return model.Principal{}, err
		}
		return model.Principal{ID: teacher.ID, Kind: model.KindTeacher, Email: teacher.Email}, nil
	}

	user := &model.User{AccountBase: base}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return model.Principal{}, err
	}
	return model.Principal{ID: user.ID, Kind: model.KindUser, Email: user.Email}, nil
}

func (s *AuthService) bcryptCost() int {
	if s.Cfg.BcryptCost < bcrypt.MinCost || s.Cfg.BcryptCost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return s.Cfg.BcryptCost
}

// Login 先查教师表，再查学生表；同一邮箱两表都有时以密码匹配的一方为准
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	accounts, err := s.candidates(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		if bcrypt.CompareHashAndPassword([]byte(acc.hash), []byte(password)) != nil {
			continue
		}
		token, claims, err := util.GenerateJWT(acc.principal, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:     token,
			ExpiresAt: claims.ExpiresAt.Time,
			UserID:    acc.principal.ID,
			UserType:  acc.principal.Kind,
		}, nil
	}
	return nil, util.ErrInvalidCredentials
}

type credential struct {
	principal model.Principal
	hash      string
}

// candidates 按教师、学生顺序返回该邮箱对应的账号
func (s *AuthService) candidates(ctx context.Context, email string) ([]credential, error) {
	var accounts []credential

	teacher, err := s.TeacherRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		accounts = append(accounts, credential{
			principal: model.Principal{ID: teacher.ID, Kind: model.KindTeacher, Email: teacher.Email},
			hash:      teacher.Password,
		})
	case !errors.Is(err, util.ErrNotFound):
		return nil, err
	}

	user, err := s.UserRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		accounts = append(accounts, credential{
			principal: model.Principal{ID: user.ID, Kind: model.KindUser, Email: user.Email},
			hash:      user.Password,
		})
	case !errors.Is(err, util.ErrNotFound):
		return nil, err
	}

	return accounts, nil
}

// Logout 把令牌加入黑名单直到其自然过期
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.Denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *AuthService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.Denylist.IsRevoked(ctx, jti)
}

// Profile 返回 *model.Teacher 或 *model.User
func (s *AuthService) Profile(ctx context.Context, p model.Principal) (interface{}, error) {
	if p.IsTeacher() {
		return s.TeacherRepo.FindByID(ctx, p.ID)
	}
	return s.UserRepo.FindByID(ctx, p.ID)
}
