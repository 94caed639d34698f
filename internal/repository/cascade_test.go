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

func TestSoftDeleteCourseCascadesToURLs(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	course := seedCourse(t, store, teacher.ID, "https://a", "https://b", "https://c")
	other := seedCourse(t, store, teacher.ID, "https://other")

	repo := NewCascadeRepository(store)
	require.NoError(t, repo.SoftDelete(context.Background(), KindCourse, course.ID))

	assert.Equal(t, int64(0), countLive(t, store, "courses", "id = ?", course.ID))
	assert.Equal(t, int64(0), countLive(t, store, "course_urls", "course_id = ?", course.ID))

	var deleted int64
	require.NoError(t, store.DB.Raw("SELECT COUNT(*) FROM course_urls WHERE course_id = ? AND deleted_at IS NOT NULL", course.ID).Scan(&deleted).Error)
	assert.Equal(t, int64(3), deleted)

	// 其他课程不受影响
	assert.Equal(t, int64(1), countLive(t, store, "courses", "id = ?", other.ID))
	assert.Equal(t, int64(1), countLive(t, store, "course_urls", "course_id = ?", other.ID))
}

func TestSoftDeleteKeepsEarlierChildDeletion(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)

	assignment := &model.Assignment{
		TeacherID: teacher.ID,
		Name:      "hw1",
		Questions: []model.AssignmentQuestion{{Question: "q1", Answer: "a1"}, {Question: "q2", Answer: "a2"}},
	}
	assignments := NewAssignmentRepository(store)
	require.NoError(t, assignments.Create(context.Background(), assignment))

	earlier := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.DB.Exec("UPDATE assignment_questions SET deleted_at = ? WHERE id = ?", earlier, assignment.Questions[0].ID).Error)

	repo := NewCascadeRepository(store)
	repo.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, repo.SoftDelete(context.Background(), KindAssignment, assignment.ID))

	var q model.AssignmentQuestion
	require.NoError(t, store.DB.Raw("SELECT id, assignment_id, question, answer, created_at, updated_at, deleted_at FROM assignment_questions WHERE id = ?", assignment.Questions[0].ID).Scan(&q).Error)
	require.True(t, q.DeletedAt.Valid)
	assert.True(t, q.DeletedAt.Time.Equal(earlier))
	assert.Equal(t, int64(0), countLive(t, store, "assignment_questions", "assignment_id = ?", assignment.ID))
}

func TestSoftDeleteMissingParent(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	course := seedCourse(t, store, teacher.ID, "https://a")

	repo := NewCascadeRepository(store)
	err := repo.SoftDelete(context.Background(), KindCourse, course.ID+100)
	assert.ErrorIs(t, err, util.ErrNotFound)

	assert.Equal(t, int64(1), countLive(t, store, "courses", ""))
	assert.Equal(t, int64(1), countLive(t, store, "course_urls", ""))
}

func TestSoftDeleteTwice(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)

	quiz := &model.Quiz{
		TeacherID: teacher.ID,
		Name:      "quiz",
		Questions: []model.QuizQuestion{{Question: "1+1", OptionList: []string{"1", "2"}, CorrectAnswer: "B"}},
	}
	require.NoError(t, NewQuizRepository(store).Create(context.Background(), quiz))

	repo := NewCascadeRepository(store)
	require.NoError(t, repo.SoftDelete(context.Background(), KindQuiz, quiz.ID))
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), KindQuiz, quiz.ID), util.ErrNotFound)
}

func TestSoftDeleteRollsBackWhenChildUpdateFails(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	course := seedCourse(t, store, teacher.ID, "https://a")

	require.NoError(t, store.DB.Exec("DROP TABLE course_urls").Error)

	repo := NewCascadeRepository(store)
	err := repo.SoftDelete(context.Background(), KindCourse, course.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrStorage)

	assert.Equal(t, int64(1), countLive(t, store, "courses", "id = ?", course.ID))
}

func TestSoftDeleteIgnoresCallerCancellation(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	course := seedCourse(t, store, teacher.ID, "https://a", "https://b")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewCascadeRepository(store)
	require.NoError(t, repo.SoftDelete(ctx, KindCourse, course.ID))
	assert.Equal(t, int64(0), countLive(t, store, "course_urls", "course_id = ?", course.ID))
}

func TestSoftDeleteUnknownKind(t *testing.T) {
	store := newTestStore(t)
	repo := NewCascadeRepository(store)
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), ParentKind(99), 1), util.ErrValidation)
}
