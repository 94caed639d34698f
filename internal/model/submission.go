package model

import "time"

// MaxQuizAnswerLength 与 quiz_submissions.answer 列宽一致
const MaxQuizAnswerLength = 16

// AssignmentSubmission 每个 (学生, 题目) 仅允许提交一次，Score 由评分器计算
// swagger:model AssignmentSubmission
type AssignmentSubmission struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uint      `gorm:"uniqueIndex:idx_assignment_submission_user_question;not null" json:"userId"`
	AssignmentID         uint      `gorm:"index;not null" json:"assignmentId"`
	AssignmentQuestionID uint      `gorm:"uniqueIndex:idx_assignment_submission_user_question;not null" json:"assignmentQuestionId"`
	Answer               string    `gorm:"type:text" json:"answer"`
	SubmittedAt          time.Time `json:"submittedAt"`
	Score                float64   `gorm:"not null;default:0" json:"score"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}

// swagger:model QuizSubmission
type QuizSubmission struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"uniqueIndex:idx_quiz_submission_user_question;not null" json:"userId"`
	QuizID         uint      `gorm:"index;not null" json:"quizId"`
	QuizQuestionID uint      `gorm:"uniqueIndex:idx_quiz_submission_user_question;not null" json:"quizQuestionId"`
	Answer         string    `gorm:"size:16" json:"answer"`
	SubmittedAt    time.Time `json:"submittedAt"`
	Score          float64   `gorm:"not null;default:0" json:"score"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

// SubmissionRow 教师端查看提交记录，附带学生信息
type SubmissionRow struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	ParentID    uint      `json:"parentId"`
	QuestionID  uint      `json:"questionId"`
	Answer      string    `json:"answer"`
	SubmittedAt time.Time `json:"submittedAt"`
	Score       float64   `json:"score"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
}
