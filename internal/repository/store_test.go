package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/pkg/database"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return NewStore(db, 5*time.Second)
}

func seedTeacher(t *testing.T, store Store) *model.Teacher {
	t.Helper()
	teacher := &model.Teacher{AccountBase: model.AccountBase{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "hash",
	}}
	require.NoError(t, NewTeacherRepository(store).Create(context.Background(), teacher))
	return teacher
}

func seedUser(t *testing.T, store Store, email string) *model.User {
	t.Helper()
	user := &model.User{AccountBase: model.AccountBase{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     email,
		Password:  "hash",
	}}
	require.NoError(t, NewUserRepository(store).Create(context.Background(), user))
	return user
}

func seedCourse(t *testing.T, store Store, teacherID uint, urls ...string) *model.Course {
	t.Helper()
	course := &model.Course{TeacherID: teacherID, Name: "Go", Description: "intro"}
	require.NoError(t, NewCourseRepository(store).Create(context.Background(), course, urls))
	return course
}

func countLive(t *testing.T, store Store, table, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	query := "SELECT COUNT(*) FROM " + table + " WHERE deleted_at IS NULL"
	if where != "" {
		query += " AND " + where
	}
	require.NoError(t, store.DB.Raw(query, args...).Scan(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }

func seedableUser(email string) *model.User {
	return &model.User{AccountBase: model.AccountBase{FirstName: "A", LastName: "B", Email: email, Password: "hash"}}
}
