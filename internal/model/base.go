package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 课程、作业、测验及其子项共用；DeletedAt 为空即视为有效
// swagger:model
type BaseModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
