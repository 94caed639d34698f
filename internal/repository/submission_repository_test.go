package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAssignmentSubmissions(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	user := seedUser(t, store, "alan@example.com")
	assignment := seedAssignment(t, store, teacher.ID, "alpha", "beta")

	repo := NewSubmissionRepository(store)
	ctx := context.Background()
	now := time.Now()
	rows := []model.AssignmentSubmission{
		{UserID: user.ID, AssignmentID: assignment.ID, AssignmentQuestionID: assignment.Questions[0].ID, Answer: "alpha", SubmittedAt: now, Score: 2},
		{UserID: user.ID, AssignmentID: assignment.ID, AssignmentQuestionID: assignment.Questions[1].ID, Answer: "bxxx", SubmittedAt: now, Score: 0.6},
	}
	require.NoError(t, repo.InsertAssignmentSubmissions(ctx, rows))

	own, err := repo.ListUserAssignmentSubmissions(ctx, user.ID, assignment.ID)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, 2.0, own[0].Score)
	assert.Equal(t, 0.6, own[1].Score)

	all, err := repo.ListAssignmentSubmissions(ctx, assignment.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alan@example.com", all[0].Email)
	assert.Equal(t, assignment.ID, all[0].ParentID)
}

func TestInsertSubmissionsRejectsRepeatWithoutPartialWrite(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	user := seedUser(t, store, "alan@example.com")
	assignment := seedAssignment(t, store, teacher.ID, "alpha", "beta")

	repo := NewSubmissionRepository(store)
	ctx := context.Background()
	first := []model.AssignmentSubmission{
		{UserID: user.ID, AssignmentID: assignment.ID, AssignmentQuestionID: assignment.Questions[0].ID, Answer: "alpha", SubmittedAt: time.Now(), Score: 2},
	}
	require.NoError(t, repo.InsertAssignmentSubmissions(ctx, first))

	second := []model.AssignmentSubmission{
		{UserID: user.ID, AssignmentID: assignment.ID, AssignmentQuestionID: assignment.Questions[1].ID, Answer: "beta", SubmittedAt: time.Now(), Score: 2},
		{UserID: user.ID, AssignmentID: assignment.ID, AssignmentQuestionID: assignment.Questions[0].ID, Answer: "again", SubmittedAt: time.Now(), Score: 0},
	}
	assert.ErrorIs(t, repo.InsertAssignmentSubmissions(ctx, second), util.ErrConflict)

	own, err := repo.ListUserAssignmentSubmissions(ctx, user.ID, assignment.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestInsertQuizSubmissions(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	user := seedUser(t, store, "alan@example.com")

	quiz := &model.Quiz{TeacherID: teacher.ID, Name: "quiz", Questions: []model.QuizQuestion{
		{Question: "q", OptionList: []string{"x", "y"}, CorrectAnswer: "A"},
	}}
	require.NoError(t, NewQuizRepository(store).Create(context.Background(), quiz))

	repo := NewSubmissionRepository(store)
	ctx := context.Background()
	rows := []model.QuizSubmission{
		{UserID: user.ID, QuizID: quiz.ID, QuizQuestionID: quiz.Questions[0].ID, Answer: "A", SubmittedAt: time.Now(), Score: 1},
	}
	require.NoError(t, repo.InsertQuizSubmissions(ctx, rows))
	assert.ErrorIs(t, repo.InsertQuizSubmissions(ctx, rows), util.ErrConflict)

	all, err := repo.ListQuizSubmissions(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 1.0, all[0].Score)

	assert.ErrorIs(t, repo.InsertQuizSubmissions(ctx, nil), util.ErrValidation)
}
