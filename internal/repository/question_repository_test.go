package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAssignment(t *testing.T, store Store, teacherID uint, answers ...string) *model.Assignment {
	t.Helper()
	assignment := &model.Assignment{TeacherID: teacherID, Name: "hw"}
	for i, a := range answers {
		assignment.Questions = append(assignment.Questions, model.AssignmentQuestion{Question: string(rune('A' + i)), Answer: a})
	}
	require.NoError(t, NewAssignmentRepository(store).Create(context.Background(), assignment))
	return assignment
}

func TestApplyAssignmentQuestionChanges(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	assignment := seedAssignment(t, store, teacher.ID, "one", "two")

	repo := NewAssignmentRepository(store)
	ctx := context.Background()
	created, err := repo.ApplyQuestionChanges(ctx, assignment.ID, []AssignmentQuestionChange{
		{Action: ActionCreate, Question: strPtr("new"), Answer: strPtr("three")},
		{Action: ActionUpdate, ID: assignment.Questions[0].ID, Answer: strPtr("uno")},
		{Action: ActionDelete, ID: assignment.Questions[1].ID},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	got, err := repo.FindByID(ctx, assignment.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "uno", got.Questions[0].Answer)
	assert.Equal(t, "A", got.Questions[0].Question)
	assert.Equal(t, "three", got.Questions[1].Answer)

	// 父记录保持有效
	assert.Equal(t, int64(1), countLive(t, store, "assignments", "id = ?", assignment.ID))
}

func TestApplyAssignmentQuestionChangesRollsBack(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	assignment := seedAssignment(t, store, teacher.ID, "one")

	repo := NewAssignmentRepository(store)
	_, err := repo.ApplyQuestionChanges(context.Background(), assignment.ID, []AssignmentQuestionChange{
		{Action: ActionCreate, Question: strPtr("new"), Answer: strPtr("x")},
		{Action: ActionDelete, ID: 9999},
	})
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.Equal(t, int64(1), countLive(t, store, "assignment_questions", "assignment_id = ?", assignment.ID))
}

func TestFindReferenceAnswers(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	assignment := seedAssignment(t, store, teacher.ID, "alpha", "beta", "gamma")
	other := seedAssignment(t, store, teacher.ID, "delta")

	repo := NewAssignmentRepository(store)
	ctx := context.Background()
	_, err := repo.ApplyQuestionChanges(ctx, assignment.ID, []AssignmentQuestionChange{
		{Action: ActionDelete, ID: assignment.Questions[2].ID},
	})
	require.NoError(t, err)

	ids := []uint{assignment.Questions[1].ID, assignment.Questions[0].ID, assignment.Questions[2].ID, other.Questions[0].ID}
	refs, err := repo.FindReferenceAnswers(ctx, assignment.ID, ids)
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{
		assignment.Questions[0].ID: "alpha",
		assignment.Questions[1].ID: "beta",
	}, refs)

	require.NoError(t, NewCascadeRepository(store).SoftDelete(ctx, KindAssignment, assignment.ID))
	refs, err = repo.FindReferenceAnswers(ctx, assignment.ID, ids)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestQuizQuestionsRoundTripOptions(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)

	quiz := &model.Quiz{
		TeacherID: teacher.ID,
		Name:      "quiz",
		Questions: []model.QuizQuestion{
			{Question: "capital of France", OptionList: []string{"Berlin", "Paris", "Rome", "Madrid"}, CorrectAnswer: "B"},
			{Question: "2+2", OptionList: []string{"3", "4"}, CorrectAnswer: "B"},
		},
	}
	repo := NewQuizRepository(store)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, quiz))

	got, err := repo.FindByID(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, []string{"Berlin", "Paris", "Rome", "Madrid"}, got.Questions[0].OptionList)

	_, err = repo.ApplyQuestionChanges(ctx, quiz.ID, []QuizQuestionChange{
		{Action: ActionUpdate, ID: quiz.Questions[1].ID, Options: []string{"4", "5"}, CorrectAnswer: strPtr("A")},
	})
	require.NoError(t, err)

	refs, err := repo.FindCorrectOptions(ctx, quiz.ID, []uint{quiz.Questions[0].ID, quiz.Questions[1].ID})
	require.NoError(t, err)
	assert.Equal(t, "B", refs[quiz.Questions[0].ID])
	assert.Equal(t, "A", refs[quiz.Questions[1].ID])

	list, err := repo.List(ctx, &teacher.ID, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"4", "5"}, list[0].Questions[1].OptionList)
}
