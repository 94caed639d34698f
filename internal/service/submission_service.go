package service

import (
	"context"
	"course_backend/internal/grading"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"course_backend/pkg/logger"
	"course_backend/pkg/monitoring"
	"course_backend/pkg/tracing"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// AssignmentReferenceStore 返回的映射只包含未删除作业下未删除的题目
type AssignmentReferenceStore interface {
	FindReferenceAnswers(ctx context.Context, assignmentID uint, questionIDs []uint) (map[uint]string, error)
}

type QuizReferenceStore interface {
	FindCorrectOptions(ctx context.Context, quizID uint, questionIDs []uint) (map[uint]string, error)
}

// SubmissionStore 批量插入必须在单个事务内完成，已有提交时返回 ErrConflict
type SubmissionStore interface {
	InsertAssignmentSubmissions(ctx context.Context, rows []model.AssignmentSubmission) error
	InsertQuizSubmissions(ctx context.Context, rows []model.QuizSubmission) error
	ListUserAssignmentSubmissions(ctx context.Context, userID, assignmentID uint) ([]model.AssignmentSubmission, error)
	ListUserQuizSubmissions(ctx context.Context, userID, quizID uint) ([]model.QuizSubmission, error)
}

type AnswerInput struct {
	QuestionID uint
	Answer     string
}

type QuestionScore struct {
	QuestionID uint    `json:"questionId"`
	Score      float64 `json:"score"`
}

type SubmissionResult struct {
	ParentID uint            `json:"parentId"`
	Scores   []QuestionScore `json:"scores"`
	Total    float64         `json:"total"`
}

type SubmissionService struct {
	Assignments AssignmentReferenceStore
	Quizzes     QuizReferenceStore
	Submissions SubmissionStore
	now         func() time.Time
}

func NewSubmissionService(assignments AssignmentReferenceStore, quizzes QuizReferenceStore, submissions SubmissionStore) *SubmissionService {
	return &SubmissionService{
		Assignments: assignments,
		Quizzes:     quizzes,
		Submissions: submissions,
		now:         time.Now,
	}
}

// PairAnswers 将请求中的两个平行数组按下标配对，长度不一致时报错
func PairAnswers(questionIDs []uint, answers []string) ([]AnswerInput, error) {
	if len(questionIDs) != len(answers) {
		return nil, util.Validation("got %d question ids but %d answers", len(questionIDs), len(answers))
	}
	inputs := make([]AnswerInput, len(questionIDs))
	for i := range questionIDs {
		inputs[i] = AnswerInput{QuestionID: questionIDs[i], Answer: answers[i]}
	}
	return inputs, nil
}

func questionIDs(inputs []AnswerInput) ([]uint, error) {
	if len(inputs) == 0 {
		return nil, util.Validation("at least one answer is required")
	}
	ids := make([]uint, len(inputs))
	seen := make(map[uint]struct{}, len(inputs))
	for i, in := range inputs {
		if in.QuestionID == 0 {
			return nil, util.Validation("question id is required")
		}
		if _, dup := seen[in.QuestionID]; dup {
			return nil, util.Validation("question %d answered more than once", in.QuestionID)
		}
		seen[in.QuestionID] = struct{}{}
		ids[i] = in.QuestionID
	}
	return ids, nil
}

// scoreAll 按题目 ID 取标准答案评分，结果保持输入顺序
func scoreAll(inputs []AnswerInput, refs map[uint]string, parent string, parentID uint, score func(submitted, reference string) float64) ([]QuestionScore, float64, error) {
	scores := make([]QuestionScore, len(inputs))
	var total float64
	for i, in := range inputs {
		ref, ok := refs[in.QuestionID]
		if !ok {
			return nil, 0, util.NotFound("question %d of %s %d", in.QuestionID, parent, parentID)
		}
		s := score(in.Answer, ref)
		scores[i] = QuestionScore{QuestionID: in.QuestionID, Score: s}
		total += s
	}
	return scores, total, nil
}

func scoreValues(scores []QuestionScore) []float64 {
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = s.Score
	}
	return out
}

func (s *SubmissionService) RecordAssignmentSubmission(ctx context.Context, p model.Principal, assignmentID uint, inputs []AnswerInput) (*SubmissionResult, error) {
	if err := requireUser(p); err != nil {
		return nil, err
	}
	ids, err := questionIDs(inputs)
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "submission.record_assignment")
	defer span.End()
	span.SetAttributes(attribute.Int64("assignment.id", int64(assignmentID)), attribute.Int("answers", len(inputs)))

	refs, err := s.Assignments.FindReferenceAnswers(ctx, assignmentID, ids)
	if err != nil {
		return nil, err
	}
	scores, total, err := scoreAll(inputs, refs, "assignment", assignmentID, grading.ScoreAssignment)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rows := make([]model.AssignmentSubmission, len(inputs))
	for i, in := range inputs {
		rows[i] = model.AssignmentSubmission{
			UserID:               p.ID,
			AssignmentID:         assignmentID,
			AssignmentQuestionID: in.QuestionID,
			Answer:               in.Answer,
			SubmittedAt:          now,
			Score:                scores[i].Score,
		}
	}
	if err := s.Submissions.InsertAssignmentSubmissions(ctx, rows); err != nil {
		span.RecordError(err)
		return nil, err
	}

	monitoring.ObserveScores("assignment", scoreValues(scores))
	logger.Log.Info("Assignment submission recorded",
		zap.Uint("userId", p.ID),
		zap.Uint("assignmentId", assignmentID),
		zap.Int("answers", len(rows)),
		zap.Float64("total", total),
	)
	return &SubmissionResult{ParentID: assignmentID, Scores: scores, Total: total}, nil
}

func (s *SubmissionService) RecordQuizSubmission(ctx context.Context, p model.Principal, quizID uint, inputs []AnswerInput) (*SubmissionResult, error) {
	if err := requireUser(p); err != nil {
		return nil, err
	}
	ids, err := questionIDs(inputs)
	if err != nil {
		return nil, err
	}
	for _, in := range inputs {
		if utf8.RuneCountInString(in.Answer) > model.MaxQuizAnswerLength {
			return nil, util.Validation("answer for question %d exceeds %d characters", in.QuestionID, model.MaxQuizAnswerLength)
		}
	}

	ctx, span := tracing.StartSpan(ctx, "submission.record_quiz")
	defer span.End()
	span.SetAttributes(attribute.Int64("quiz.id", int64(quizID)), attribute.Int("answers", len(inputs)))

	refs, err := s.Quizzes.FindCorrectOptions(ctx, quizID, ids)
	if err != nil {
		return nil, err
	}
	scores, total, err := scoreAll(inputs, refs, "quiz", quizID, grading.ScoreQuiz)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rows := make([]model.QuizSubmission, len(inputs))
	for i, in := range inputs {
		rows[i] = model.QuizSubmission{
			UserID:         p.ID,
			QuizID:         quizID,
			QuizQuestionID: in.QuestionID,
			Answer:         in.Answer,
			SubmittedAt:    now,
			Score:          scores[i].Score,
		}
	}
	if err := s.Submissions.InsertQuizSubmissions(ctx, rows); err != nil {
		span.RecordError(err)
		return nil, err
	}

	monitoring.ObserveScores("quiz", scoreValues(scores))
	logger.Log.Info("Quiz submission recorded",
		zap.Uint("userId", p.ID),
		zap.Uint("quizId", quizID),
		zap.Int("answers", len(rows)),
		zap.Float64("total", total),
	)
	return &SubmissionResult{ParentID: quizID, Scores: scores, Total: total}, nil
}

func (s *SubmissionService) ListOwnAssignmentSubmissions(ctx context.Context, p model.Principal, assignmentID uint) ([]model.AssignmentSubmission, error) {
	if err := requireUser(p); err != nil {
		return nil, err
	}
	return s.Submissions.ListUserAssignmentSubmissions(ctx, p.ID, assignmentID)
}

func (s *SubmissionService) ListOwnQuizSubmissions(ctx context.Context, p model.Principal, quizID uint) ([]model.QuizSubmission, error) {
	if err := requireUser(p); err != nil {
		return nil, err
	}
	return s.Submissions.ListUserQuizSubmissions(ctx, p.ID, quizID)
}
