package repository

import (
	"context"
	"course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseCreateAndFind(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	course := seedCourse(t, store, teacher.ID, "https://a", "https://b")

	repo := NewCourseRepository(store)
	got, err := repo.FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Name)
	assert.Equal(t, teacher.ID, got.TeacherID)
	require.Len(t, got.URLs, 2)
	assert.Equal(t, "https://a", got.URLs[0].URL)

	_, err = repo.FindByID(context.Background(), course.ID+1)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestCoursePartialUpdate(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	course := seedCourse(t, store, teacher.ID)

	repo := NewCourseRepository(store)
	require.NoError(t, repo.Update(context.Background(), course.ID, CourseUpdate{Description: strPtr("advanced")}))

	got, err := repo.FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Name)
	assert.Equal(t, "advanced", got.Description)

	require.NoError(t, NewCascadeRepository(store).SoftDelete(context.Background(), KindCourse, course.ID))
	assert.ErrorIs(t, repo.Update(context.Background(), course.ID, CourseUpdate{Name: strPtr("x")}), util.ErrNotFound)
}

func TestCourseURLs(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	course := seedCourse(t, store, teacher.ID, "https://a")
	other := seedCourse(t, store, teacher.ID, "https://b")

	repo := NewCourseRepository(store)
	ctx := context.Background()

	added, err := repo.AddURL(ctx, course.ID, "https://c")
	require.NoError(t, err)
	assert.NotZero(t, added.ID)

	require.NoError(t, repo.UpdateURL(ctx, course.ID, added.ID, "https://d"))
	// 链接不属于该课程
	assert.ErrorIs(t, repo.UpdateURL(ctx, course.ID, other.URLs[0].ID, "https://x"), util.ErrNotFound)

	got, err := repo.FindByID(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, got.URLs, 2)
	assert.Equal(t, "https://d", got.URLs[1].URL)

	require.NoError(t, NewCascadeRepository(store).SoftDelete(ctx, KindCourse, course.ID))
	_, err = repo.AddURL(ctx, course.ID, "https://e")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestCourseListSkipsDeleted(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	kept := seedCourse(t, store, teacher.ID, "https://a")
	dropped := seedCourse(t, store, teacher.ID)

	require.NoError(t, NewCascadeRepository(store).SoftDelete(context.Background(), KindCourse, dropped.ID))

	repo := NewCourseRepository(store)
	courses, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, kept.ID, courses[0].ID)
	assert.Len(t, courses[0].URLs, 1)

	mine, err := repo.ListByTeacher(context.Background(), teacher.ID+1)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestCourseEnroll(t *testing.T) {
	store := newTestStore(t)
	teacher := seedTeacher(t, store)
	user := seedUser(t, store, "alan@example.com")
	course := seedCourse(t, store, teacher.ID)

	repo := NewCourseRepository(store)
	ctx := context.Background()
	require.NoError(t, repo.Enroll(ctx, course.ID, user.ID))
	assert.ErrorIs(t, repo.Enroll(ctx, course.ID, user.ID), util.ErrConflict)
	assert.ErrorIs(t, repo.Enroll(ctx, course.ID+5, user.ID), util.ErrNotFound)

	users, err := repo.ListEnrolledUsers(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alan@example.com", users[0].Email)
}

func TestAccountEmailUnique(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "dup@example.com")

	users := NewUserRepository(store)
	err := users.Create(context.Background(), seedableUser("dup@example.com"))
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	got, err := users.FindByEmail(context.Background(), "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.Password)

	_, err = users.FindByEmail(context.Background(), "none@example.com")
	assert.ErrorIs(t, err, util.ErrNotFound)
}
