package service

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/repository"
	"course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedTeachers(t *testing.T, store repository.Store) (model.Principal, model.Principal) {
	t.Helper()
	teachers := repository.NewTeacherRepository(store)
	var out []model.Principal
	for _, email := range []string{"owner@example.com", "other@example.com"} {
		tc := &model.Teacher{AccountBase: model.AccountBase{FirstName: "T", LastName: "T", Email: email, Password: "x"}, Skills: "go"}
		require.NoError(t, teachers.Create(context.Background(), tc))
		out = append(out, model.Principal{ID: tc.ID, Kind: model.KindTeacher, Email: email})
	}
	return out[0], out[1]
}

func TestDeleteCourseChecksOwnershipBeforeCascade(t *testing.T) {
	store := newTestStore(t)
	owner, other := seedTeachers(t, store)
	deleter := new(MockDeleter)
	svc := NewCourseService(repository.NewCourseRepository(store), deleter, NewStorageService(testConfig(t)))
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, owner, CreateCourseInput{Name: "Go", URLs: []string{"https://a"}})
	require.NoError(t, err)

	err = svc.DeleteCourse(ctx, other, course.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
	deleter.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)

	err = svc.DeleteCourse(ctx, owner, course.ID+100)
	assert.ErrorIs(t, err, util.ErrNotFound)

	deleter.On("SoftDelete", mock.Anything, repository.KindCourse, course.ID).Return(nil).Once()
	require.NoError(t, svc.DeleteCourse(ctx, owner, course.ID))
	deleter.AssertExpectations(t)
}

func TestDeleteCourseCascadesThroughRepository(t *testing.T) {
	store := newTestStore(t)
	owner, _ := seedTeachers(t, store)
	courses := repository.NewCourseRepository(store)
	svc := NewCourseService(courses, repository.NewCascadeRepository(store), NewStorageService(testConfig(t)))
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, owner, CreateCourseInput{Name: "Go", URLs: []string{"https://a", "https://b"}})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCourse(ctx, owner, course.ID))

	// 第二次删除时课程已不可见
	assert.ErrorIs(t, svc.DeleteCourse(ctx, owner, course.ID), util.ErrNotFound)
	_, err = svc.GetCourse(ctx, course.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestCourseUpdateAndEnroll(t *testing.T) {
	store := newTestStore(t)
	owner, other := seedTeachers(t, store)
	svc := NewCourseService(repository.NewCourseRepository(store), new(MockDeleter), NewStorageService(testConfig(t)))
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, owner, CreateCourseInput{Name: "Go", Description: "intro"})
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(ctx, owner, course.ID, repository.CourseUpdate{Name: strPtr("Advanced Go")})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Go", updated.Name)
	assert.Equal(t, "intro", updated.Description)

	_, err = svc.UpdateCourse(ctx, other, course.ID, repository.CourseUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.CreateCourse(ctx, owner, CreateCourseInput{Name: " "})
	assert.ErrorIs(t, err, util.ErrValidation)

	users := repository.NewUserRepository(store)
	u := &model.User{AccountBase: model.AccountBase{FirstName: "U", LastName: "U", Email: "u@example.com", Password: "x"}}
	require.NoError(t, users.Create(ctx, u))
	learner := model.Principal{ID: u.ID, Kind: model.KindUser}

	require.NoError(t, svc.Enroll(ctx, learner, course.ID))
	assert.ErrorIs(t, svc.Enroll(ctx, learner, course.ID), util.ErrConflict)
	assert.ErrorIs(t, svc.Enroll(ctx, owner, course.ID), util.ErrPermissionDenied)

	enrolled, err := svc.ListEnrolledUsers(ctx, owner, course.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, u.ID, enrolled[0].UserID)
}
