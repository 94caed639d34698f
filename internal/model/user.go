package model

import "time"

type AccountKind string

const (
	KindTeacher AccountKind = "teacher"
	KindUser    AccountKind = "user"
)

func (k AccountKind) Valid() bool {
	return k == KindTeacher || k == KindUser
}

// AccountBase 教师与学生账号的公共字段，两类账号分表存储
type AccountBase struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null" json:"lastName"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// swagger:model Teacher
type Teacher struct {
	AccountBase
	Skills string `gorm:"type:text" json:"skills"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// swagger:model User
type User struct {
	AccountBase
}

func (User) TableName() string {
	return "users"
}

// Principal 已认证的调用方，由控制器显式传入各服务
type Principal struct {
	ID    uint
	Kind  AccountKind
	Email string
}

func (p Principal) IsTeacher() bool {
	return p.Kind == KindTeacher
}
