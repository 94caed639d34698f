package service

import (
	"context"
	"course_backend/internal/repository"
	"course_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignmentService(t *testing.T) (*AssignmentService, *MockDeleter, repository.Store) {
	store := newTestStore(t)
	deleter := new(MockDeleter)
	svc := NewAssignmentService(
		repository.NewAssignmentRepository(store),
		repository.NewCourseRepository(store),
		repository.NewSubmissionRepository(store),
		deleter,
	)
	return svc, deleter, store
}

func TestAssignmentLifecycle(t *testing.T) {
	svc, deleter, store := newAssignmentService(t)
	owner, other := seedTeachers(t, store)
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(7 * 24 * time.Hour)
	assignment, err := svc.Create(ctx, owner, CreateAssignmentInput{
		Name:      "hw1",
		StartDate: &start,
		EndDate:   &end,
		Questions: []AssignmentQuestionInput{{Question: "define goroutine", Answer: "lightweight thread"}},
	})
	require.NoError(t, err)
	require.Len(t, assignment.Questions, 1)

	// 学生端看不到参考答案
	view, err := svc.GetForUser(ctx, assignment.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Questions[0].Answer)

	updated, err := svc.ApplyQuestionChanges(ctx, owner, assignment.ID, []repository.AssignmentQuestionChange{
		{Action: repository.ActionCreate, Question: strPtr("define channel"), Answer: strPtr("typed conduit")},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Questions, 2)

	_, err = svc.ApplyQuestionChanges(ctx, owner, assignment.ID, []repository.AssignmentQuestionChange{
		{Action: "rename", ID: 1},
	})
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = svc.Get(ctx, other, assignment.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	before := start.Add(-time.Hour)
	_, err = svc.Update(ctx, owner, assignment.ID, repository.AssignmentUpdate{EndDate: &before})
	assert.ErrorIs(t, err, util.ErrValidation)

	assert.ErrorIs(t, svc.Delete(ctx, other, assignment.ID), util.ErrPermissionDenied)
	deleter.On("SoftDelete", mock.Anything, repository.KindAssignment, assignment.ID).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, owner, assignment.ID))
	deleter.AssertExpectations(t)
}

func TestQuizQuestionValidation(t *testing.T) {
	store := newTestStore(t)
	owner, _ := seedTeachers(t, store)
	svc := NewQuizService(
		repository.NewQuizRepository(store),
		repository.NewCourseRepository(store),
		repository.NewSubmissionRepository(store),
		new(MockDeleter),
	)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, CreateQuizInput{Name: "q", Questions: []QuizQuestionInput{
		{Question: "pick", Options: []string{"x", "y"}, CorrectAnswer: "C"},
	}})
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = svc.Create(ctx, owner, CreateQuizInput{Name: "q", Questions: []QuizQuestionInput{
		{Question: "pick", Options: []string{"x", "y"}, CorrectAnswer: "E"},
	}})
	assert.ErrorIs(t, err, util.ErrValidation)

	quiz, err := svc.Create(ctx, owner, CreateQuizInput{Name: "q", Questions: []QuizQuestionInput{
		{Question: "pick", Options: []string{"x", "y", "z"}, CorrectAnswer: "C"},
	}})
	require.NoError(t, err)

	// 只改选项时用已有的正确选项校验
	_, err = svc.ApplyQuestionChanges(ctx, owner, quiz.ID, []repository.QuizQuestionChange{
		{Action: repository.ActionUpdate, ID: quiz.Questions[0].ID, Options: []string{"x", "y"}},
	})
	assert.ErrorIs(t, err, util.ErrValidation)

	view, err := svc.GetForUser(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Questions[0].CorrectAnswer)
	assert.Equal(t, []string{"x", "y", "z"}, view.Questions[0].OptionList)
}
