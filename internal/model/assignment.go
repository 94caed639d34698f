package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	TeacherID uint                 `gorm:"index;not null" json:"teacherId"`
	CourseID  *uint                `gorm:"index" json:"courseId,omitempty"`
	Name      string               `gorm:"size:255;not null" json:"name"`
	StartDate *time.Time           `json:"startDate,omitempty"`
	EndDate   *time.Time           `json:"endDate,omitempty"`
	Questions []AssignmentQuestion `gorm:"-" json:"questions"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentQuestion Answer 为教师给出的参考答案，用于自动评分
// swagger:model AssignmentQuestion
type AssignmentQuestion struct {
	BaseModel
	AssignmentID uint   `gorm:"index;not null" json:"assignmentId"`
	Question     string `gorm:"type:text;not null" json:"question"`
	Answer       string `gorm:"type:text" json:"answer,omitempty"`
}

func (AssignmentQuestion) TableName() string {
	return "assignment_questions"
}
