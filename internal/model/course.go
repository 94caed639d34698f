package model

import "time"

// swagger:model Course
type Course struct {
	BaseModel
	TeacherID   uint        `gorm:"index;not null" json:"teacherId"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	URLs        []CourseURL `gorm:"-" json:"urls"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseURL 课程附带的资源链接
// swagger:model CourseURL
type CourseURL struct {
	BaseModel
	CourseID uint   `gorm:"index;not null" json:"courseId"`
	URL      string `gorm:"size:1024;not null" json:"url"`
}

func (CourseURL) TableName() string {
	return "course_urls"
}

type CourseEnrollment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID  uint      `gorm:"uniqueIndex:idx_enrollment_course_user;not null" json:"courseId"`
	UserID    uint      `gorm:"uniqueIndex:idx_enrollment_course_user;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CourseEnrollment) TableName() string {
	return "course_enrollments"
}

// EnrolledUser 教师查看选课学生列表时的行
type EnrolledUser struct {
	UserID     uint      `json:"userId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
