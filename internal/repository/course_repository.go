package repository

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type CourseRepository struct {
	Store
}

func NewCourseRepository(store Store) *CourseRepository {
	return &CourseRepository{Store: store}
}

// CourseUpdate 为 nil 的字段保持不变
type CourseUpdate struct {
	Name        *string
	Description *string
}

func (u CourseUpdate) columns() []column {
	var cols []column
	if u.Name != nil {
		cols = append(cols, column{"name", *u.Name})
	}
	if u.Description != nil {
		cols = append(cols, column{"description", *u.Description})
	}
	return cols
}

const courseColumns = "id, teacher_id, name, description, created_at, updated_at, deleted_at"

// Create 课程与其链接在同一事务中写入
func (r *CourseRepository) Create(ctx context.Context, course *model.Course, urls []string) error {
	db, cancel := r.session(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		course.URLs = make([]model.CourseURL, 0, len(urls))
		for _, u := range urls {
			course.URLs = append(course.URLs, model.CourseURL{CourseID: course.ID, URL: u})
		}
		if len(course.URLs) == 0 {
			return nil
		}
		return tx.Create(&course.URLs).Error
	})
	return util.Storage(err)
}

func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]model.Course, error) {
	return r.list(ctx, "SELECT "+courseColumns+" FROM courses WHERE teacher_id = ? AND deleted_at IS NULL ORDER BY id", teacherID)
}

func (r *CourseRepository) ListAll(ctx context.Context) ([]model.Course, error) {
	return r.list(ctx, "SELECT "+courseColumns+" FROM courses WHERE deleted_at IS NULL ORDER BY id")
}

func (r *CourseRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Course, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var courses []model.Course
	if err := db.Raw(query, args...).Scan(&courses).Error; err != nil {
		return nil, util.Storage(err)
	}
	if len(courses) == 0 {
		return []model.Course{}, nil
	}

	ids := make([]uint, len(courses))
	for i := range courses {
		ids[i] = courses[i].ID
	}
	byCourse, err := r.liveURLs(db, ids)
	if err != nil {
		return nil, util.Storage(err)
	}
	for i := range courses {
		courses[i].URLs = byCourse[courses[i].ID]
		if courses[i].URLs == nil {
			courses[i].URLs = []model.CourseURL{}
		}
	}
	return courses, nil
}

func (r *CourseRepository) liveURLs(db *gorm.DB, courseIDs []uint) (map[uint][]model.CourseURL, error) {
	var urls []model.CourseURL
	err := db.Raw(
		"SELECT id, course_id, url, created_at, updated_at, deleted_at FROM course_urls WHERE course_id IN ? AND deleted_at IS NULL ORDER BY id",
		courseIDs,
	).Scan(&urls).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint][]model.CourseURL, len(courseIDs))
	for _, u := range urls {
		out[u.CourseID] = append(out[u.CourseID], u)
	}
	return out, nil
}

// FindByID 只返回未删除的课程及其未删除的链接
func (r *CourseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var course model.Course
	res := db.Raw("SELECT "+courseColumns+" FROM courses WHERE id = ? AND deleted_at IS NULL", id).Scan(&course)
	if res.Error != nil {
		return nil, util.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, util.NotFound("course %d", id)
	}

	byCourse, err := r.liveURLs(db, []uint{id})
	if err != nil {
		return nil, util.Storage(err)
	}
	course.URLs = byCourse[id]
	if course.URLs == nil {
		course.URLs = []model.CourseURL{}
	}
	return &course, nil
}

func (r *CourseRepository) Update(ctx context.Context, id uint, u CourseUpdate) error {
	db, cancel := r.session(ctx)
	defer cancel()

	return util.Storage(updateParent(db, "courses", id, u.columns(), time.Now()))
}

// UpdateURL 修改课程下的一条链接，课程或链接已删除时返回 ErrNotFound
func (r *CourseRepository) UpdateURL(ctx context.Context, courseID, urlID uint, url string) error {
	db, cancel := r.session(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := courseURLTable.requireLiveParent(tx, courseID); err != nil {
			return err
		}
		return courseURLTable.updateChild(tx, courseID, urlID, []column{{"url", url}}, time.Now())
	})
	return util.Storage(err)
}

// AddURL 为未删除的课程追加一条链接
func (r *CourseRepository) AddURL(ctx context.Context, courseID uint, url string) (*model.CourseURL, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	courseURL := &model.CourseURL{CourseID: courseID, URL: url}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := courseURLTable.requireLiveParent(tx, courseID); err != nil {
			return err
		}
		return tx.Create(courseURL).Error
	})
	if err != nil {
		return nil, util.Storage(err)
	}
	return courseURL, nil
}

// Enroll 重复选课返回 ErrConflict
func (r *CourseRepository) Enroll(ctx context.Context, courseID, userID uint) error {
	db, cancel := r.session(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := courseURLTable.requireLiveParent(tx, courseID); err != nil {
			return err
		}
		enrollment := &model.CourseEnrollment{CourseID: courseID, UserID: userID, CreatedAt: time.Now()}
		if err := tx.Create(enrollment).Error; err != nil {
			if isDuplicateKey(err) {
				return util.Conflict("already enrolled in course %d", courseID)
			}
			return err
		}
		return nil
	})
	return util.Storage(err)
}

func (r *CourseRepository) ListEnrolledUsers(ctx context.Context, courseID uint) ([]model.EnrolledUser, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var users []model.EnrolledUser
	err := db.Raw(`
		SELECT u.id AS user_id, u.first_name, u.last_name, u.email, e.created_at AS enrolled_at
		FROM course_enrollments e
		INNER JOIN users u ON u.id = e.user_id
		WHERE e.course_id = ?
		ORDER BY e.created_at, u.id
	`, courseID).Scan(&users).Error
	if err != nil {
		return nil, util.Storage(err)
	}
	if users == nil {
		users = []model.EnrolledUser{}
	}
	return users, nil
}
