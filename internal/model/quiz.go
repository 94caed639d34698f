package model

import (
	"encoding/json"
	"time"
)

var QuizOptionTags = []string{"A", "B", "C", "D"}

func IsQuizOptionTag(tag string) bool {
	for _, t := range QuizOptionTags {
		if t == tag {
			return true
		}
	}
	return false
}

// swagger:model Quiz
type Quiz struct {
	BaseModel
	TeacherID uint           `gorm:"index;not null" json:"teacherId"`
	CourseID  *uint          `gorm:"index" json:"courseId,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	StartTime *time.Time     `json:"startTime,omitempty"`
	EndTime   *time.Time     `json:"endTime,omitempty"`
	Questions []QuizQuestion `gorm:"-" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID        uint     `gorm:"index;not null" json:"quizId"`
	Question      string   `gorm:"type:text;not null" json:"question"`
	Options       string   `gorm:"type:text" json:"-"` // JSON 数组
	OptionList    []string `gorm:"-" json:"options"`
	Answer        string   `gorm:"type:text" json:"answer,omitempty"`
	CorrectAnswer string   `gorm:"size:1;not null" json:"correctAnswer,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

func EncodeOptions(options []string) (string, error) {
	if options == nil {
		options = []string{}
	}
	b, err := json.Marshal(options)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeOptions 填充 OptionList；存量数据损坏时返回空列表而不是报错
func (q *QuizQuestion) DecodeOptions() {
	q.OptionList = []string{}
	if q.Options == "" {
		return
	}
	_ = json.Unmarshal([]byte(q.Options), &q.OptionList)
}
