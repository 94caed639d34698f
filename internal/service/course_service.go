package service

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/repository"
	"course_backend/internal/util"
	"course_backend/pkg/logger"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Cascade    Deleter
	Storage    *StorageService
}

func NewCourseService(courseRepo *repository.CourseRepository, cascade Deleter, storage *StorageService) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Cascade:    cascade,
		Storage:    storage,
	}
}

type CreateCourseInput struct {
	Name        string
	Description string
	URLs        []string
}

// ownedCourse 课程不存在返回 ErrNotFound，不属于该教师返回 ErrPermissionDenied
func (s *CourseService) ownedCourse(ctx context.Context, p model.Principal, courseID uint) (*model.Course, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	course, err := s.CourseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.TeacherID != p.ID {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, p model.Principal, in CreateCourseInput) (*model.Course, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, util.Validation("course name is required")
	}
	for _, u := range in.URLs {
		if strings.TrimSpace(u) == "" {
			return nil, util.Validation("course urls must not be empty")
		}
	}

	course := &model.Course{TeacherID: p.ID, Name: in.Name, Description: in.Description}
	if err := s.CourseRepo.Create(ctx, course, in.URLs); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListTeacherCourses(ctx context.Context, p model.Principal) ([]model.Course, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	return s.CourseRepo.ListByTeacher(ctx, p.ID)
}

func (s *CourseService) GetTeacherCourse(ctx context.Context, p model.Principal, courseID uint) (*model.Course, error) {
	return s.ownedCourse(ctx, p, courseID)
}

func (s *CourseService) UpdateCourse(ctx context.Context, p model.Principal, courseID uint, u repository.CourseUpdate) (*model.Course, error) {
	if _, err := s.ownedCourse(ctx, p, courseID); err != nil {
		return nil, err
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return nil, util.Validation("course name must not be empty")
	}
	if err := s.CourseRepo.Update(ctx, courseID, u); err != nil {
		return nil, err
	}
	return s.CourseRepo.FindByID(ctx, courseID)
}

func (s *CourseService) UpdateCourseURL(ctx context.Context, p model.Principal, courseID, urlID uint, url string) error {
	if _, err := s.ownedCourse(ctx, p, courseID); err != nil {
		return err
	}
	if strings.TrimSpace(url) == "" {
		return util.Validation("url must not be empty")
	}
	return s.CourseRepo.UpdateURL(ctx, courseID, urlID, url)
}

// UploadMaterial 上传文件并作为新的课程链接保存；写库失败时删除已上传的对象
func (s *CourseService) UploadMaterial(ctx context.Context, p model.Principal, courseID uint, file *multipart.FileHeader) (*model.CourseURL, error) {
	if _, err := s.ownedCourse(ctx, p, courseID); err != nil {
		return nil, err
	}

	url, objectName, err := s.Storage.UploadMaterial(ctx, courseID, file)
	if err != nil {
		return nil, err
	}

	courseURL, err := s.CourseRepo.AddURL(ctx, courseID, url)
	if err != nil {
		if delErr := s.Storage.Delete(context.WithoutCancel(ctx), objectName); delErr != nil {
			logger.Log.Warn("Failed to remove orphaned material", zap.String("object", objectName), zap.Error(delErr))
		}
		return nil, err
	}
	return courseURL, nil
}

// DeleteCourse 课程及其链接一并软删除
func (s *CourseService) DeleteCourse(ctx context.Context, p model.Principal, courseID uint) error {
	if _, err := s.ownedCourse(ctx, p, courseID); err != nil {
		return err
	}
	return cascadeDelete(ctx, s.Cascade, p, repository.KindCourse, courseID)
}

func (s *CourseService) ListEnrolledUsers(ctx context.Context, p model.Principal, courseID uint) ([]model.EnrolledUser, error) {
	if _, err := s.ownedCourse(ctx, p, courseID); err != nil {
		return nil, err
	}
	return s.CourseRepo.ListEnrolledUsers(ctx, courseID)
}

func (s *CourseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.CourseRepo.ListAll(ctx)
}

func (s *CourseService) GetCourse(ctx context.Context, courseID uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(ctx, courseID)
}

func (s *CourseService) Enroll(ctx context.Context, p model.Principal, courseID uint) error {
	if err := requireUser(p); err != nil {
		return err
	}
	return s.CourseRepo.Enroll(ctx, courseID, p.ID)
}
