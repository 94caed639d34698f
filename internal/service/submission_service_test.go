package service

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReferenceStore struct {
	mock.Mock
}

func (m *MockReferenceStore) FindReferenceAnswers(ctx context.Context, assignmentID uint, questionIDs []uint) (map[uint]string, error) {
	args := m.Called(ctx, assignmentID, questionIDs)
	refs, _ := args.Get(0).(map[uint]string)
	return refs, args.Error(1)
}

func (m *MockReferenceStore) FindCorrectOptions(ctx context.Context, quizID uint, questionIDs []uint) (map[uint]string, error) {
	args := m.Called(ctx, quizID, questionIDs)
	refs, _ := args.Get(0).(map[uint]string)
	return refs, args.Error(1)
}

type MockSubmissionStore struct {
	mock.Mock
}

func (m *MockSubmissionStore) InsertAssignmentSubmissions(ctx context.Context, rows []model.AssignmentSubmission) error {
	return m.Called(ctx, rows).Error(0)
}

func (m *MockSubmissionStore) InsertQuizSubmissions(ctx context.Context, rows []model.QuizSubmission) error {
	return m.Called(ctx, rows).Error(0)
}

func (m *MockSubmissionStore) ListUserAssignmentSubmissions(ctx context.Context, userID, assignmentID uint) ([]model.AssignmentSubmission, error) {
	args := m.Called(ctx, userID, assignmentID)
	rows, _ := args.Get(0).([]model.AssignmentSubmission)
	return rows, args.Error(1)
}

func (m *MockSubmissionStore) ListUserQuizSubmissions(ctx context.Context, userID, quizID uint) ([]model.QuizSubmission, error) {
	args := m.Called(ctx, userID, quizID)
	rows, _ := args.Get(0).([]model.QuizSubmission)
	return rows, args.Error(1)
}

var student = model.Principal{ID: 42, Kind: model.KindUser, Email: "s@example.com"}

func setupSubmission(t *testing.T) (*SubmissionService, *MockReferenceStore, *MockSubmissionStore) {
	refs := new(MockReferenceStore)
	store := new(MockSubmissionStore)
	svc := NewSubmissionService(refs, refs, store)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		refs.AssertExpectations(t)
		store.AssertExpectations(t)
	})
	return svc, refs, store
}

func TestRecordAssignmentSubmissionMatchesByQuestionID(t *testing.T) {
	svc, refs, store := setupSubmission(t)

	// 返回顺序与提交顺序无关，评分必须按题目 ID 对应
	refs.On("FindReferenceAnswers", mock.Anything, uint(3), []uint{5, 7}).
		Return(map[uint]string{7: "second answer", 5: "first"}, nil)
	store.On("InsertAssignmentSubmissions", mock.Anything, mock.MatchedBy(func(rows []model.AssignmentSubmission) bool {
		return len(rows) == 2 &&
			rows[0].AssignmentQuestionID == 5 && rows[0].Score == 2.0 &&
			rows[1].AssignmentQuestionID == 7 && rows[1].Score == 2.0 &&
			rows[0].UserID == student.ID && rows[0].AssignmentID == 3
	})).Return(nil)

	result, err := svc.RecordAssignmentSubmission(context.Background(), student, 3, []AnswerInput{
		{QuestionID: 5, Answer: "first"},
		{QuestionID: 7, Answer: "second answer"},
	})
	require.NoError(t, err)
	assert.Equal(t, []QuestionScore{{QuestionID: 5, Score: 2.0}, {QuestionID: 7, Score: 2.0}}, result.Scores)
	assert.Equal(t, 4.0, result.Total)
	assert.Equal(t, uint(3), result.ParentID)
}

func TestRecordAssignmentSubmissionPartialCredit(t *testing.T) {
	svc, refs, store := setupSubmission(t)

	refs.On("FindReferenceAnswers", mock.Anything, uint(1), []uint{9}).
		Return(map[uint]string{9: "abcdefghij"}, nil)
	store.On("InsertAssignmentSubmissions", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.RecordAssignmentSubmission(context.Background(), student, 1, []AnswerInput{
		{QuestionID: 9, Answer: "abcdefgXYZ"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.4, result.Scores[0].Score)
}

func TestRecordAssignmentSubmissionMissingQuestion(t *testing.T) {
	svc, refs, _ := setupSubmission(t)

	refs.On("FindReferenceAnswers", mock.Anything, uint(3), []uint{5, 8}).
		Return(map[uint]string{5: "first"}, nil)

	_, err := svc.RecordAssignmentSubmission(context.Background(), student, 3, []AnswerInput{
		{QuestionID: 5, Answer: "first"},
		{QuestionID: 8, Answer: "x"},
	})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestRecordAssignmentSubmissionValidation(t *testing.T) {
	svc, _, _ := setupSubmission(t)
	ctx := context.Background()

	_, err := svc.RecordAssignmentSubmission(ctx, student, 3, nil)
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = svc.RecordAssignmentSubmission(ctx, student, 3, []AnswerInput{{QuestionID: 5}, {QuestionID: 5}})
	assert.ErrorIs(t, err, util.ErrValidation)

	teacher := model.Principal{ID: 1, Kind: model.KindTeacher}
	_, err = svc.RecordAssignmentSubmission(ctx, teacher, 3, []AnswerInput{{QuestionID: 5}})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestRecordAssignmentSubmissionPropagatesConflict(t *testing.T) {
	svc, refs, store := setupSubmission(t)

	refs.On("FindReferenceAnswers", mock.Anything, uint(3), []uint{5}).Return(map[uint]string{5: "a"}, nil)
	store.On("InsertAssignmentSubmissions", mock.Anything, mock.Anything).Return(util.Conflict("already answered"))

	_, err := svc.RecordAssignmentSubmission(context.Background(), student, 3, []AnswerInput{{QuestionID: 5, Answer: "a"}})
	assert.ErrorIs(t, err, util.ErrConflict)
}

func TestRecordQuizSubmission(t *testing.T) {
	svc, refs, store := setupSubmission(t)

	refs.On("FindCorrectOptions", mock.Anything, uint(4), []uint{11, 10}).
		Return(map[uint]string{10: "A", 11: "C"}, nil)
	store.On("InsertQuizSubmissions", mock.Anything, mock.MatchedBy(func(rows []model.QuizSubmission) bool {
		return len(rows) == 2 && rows[0].QuizQuestionID == 11 && rows[0].Score == 1 && rows[1].Score == 0
	})).Return(nil)

	result, err := svc.RecordQuizSubmission(context.Background(), student, 4, []AnswerInput{
		{QuestionID: 11, Answer: "C"},
		{QuestionID: 10, Answer: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, []QuestionScore{{QuestionID: 11, Score: 1}, {QuestionID: 10, Score: 0}}, result.Scores)
	assert.Equal(t, 1.0, result.Total)
}

func TestRecordQuizSubmissionStorageError(t *testing.T) {
	svc, refs, _ := setupSubmission(t)

	refs.On("FindCorrectOptions", mock.Anything, uint(4), []uint{1}).
		Return(nil, util.Storage(errors.New("connection reset")))

	_, err := svc.RecordQuizSubmission(context.Background(), student, 4, []AnswerInput{{QuestionID: 1, Answer: "A"}})
	assert.ErrorIs(t, err, util.ErrStorage)
}

func TestRecordQuizSubmissionRejectsLongAnswer(t *testing.T) {
	svc, _, _ := setupSubmission(t)

	_, err := svc.RecordQuizSubmission(context.Background(), student, 4, []AnswerInput{
		{QuestionID: 1, Answer: "A"},
		{QuestionID: 2, Answer: strings.Repeat("B", model.MaxQuizAnswerLength+1)},
	})
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestPairAnswers(t *testing.T) {
	inputs, err := PairAnswers([]uint{5, 7}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []AnswerInput{{QuestionID: 5, Answer: "x"}, {QuestionID: 7, Answer: "y"}}, inputs)

	_, err = PairAnswers([]uint{5, 7}, []string{"x"})
	assert.ErrorIs(t, err, util.ErrValidation)
}
