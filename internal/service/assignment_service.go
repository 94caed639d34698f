package service

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/repository"
	"course_backend/internal/util"
	"strings"
	"time"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	CourseRepo     *repository.CourseRepository
	SubmissionRepo *repository.SubmissionRepository
	Cascade        Deleter
}

func NewAssignmentService(assignmentRepo *repository.AssignmentRepository, courseRepo *repository.CourseRepository, submissionRepo *repository.SubmissionRepository, cascade Deleter) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		CourseRepo:     courseRepo,
		SubmissionRepo: submissionRepo,
		Cascade:        cascade,
	}
}

type AssignmentQuestionInput struct {
	Question string
	Answer   string
}

type CreateAssignmentInput struct {
	Name      string
	CourseID  *uint
	StartDate *time.Time
	EndDate   *time.Time
	Questions []AssignmentQuestionInput
}

func validatePeriod(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return util.Validation("end must not be before start")
	}
	return nil
}

// checkCourseOwner 关联课程时课程必须属于当前教师
func checkCourseOwner(ctx context.Context, courses *repository.CourseRepository, p model.Principal, courseID *uint) error {
	if courseID == nil {
		return nil
	}
	course, err := courses.FindByID(ctx, *courseID)
	if err != nil {
		return err
	}
	if course.TeacherID != p.ID {
		return util.ErrPermissionDenied
	}
	return nil
}

func (s *AssignmentService) owned(ctx context.Context, p model.Principal, id uint) (*model.Assignment, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	assignment, err := s.AssignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assignment.TeacherID != p.ID {
		return nil, util.ErrPermissionDenied
	}
	return assignment, nil
}

func (s *AssignmentService) Create(ctx context.Context, p model.Principal, in CreateAssignmentInput) (*model.Assignment, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, util.Validation("assignment name is required")
	}
	if err := validatePeriod(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	if err := checkCourseOwner(ctx, s.CourseRepo, p, in.CourseID); err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		TeacherID: p.ID,
		CourseID:  in.CourseID,
		Name:      in.Name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	for _, q := range in.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, util.Validation("question text is required")
		}
		assignment.Questions = append(assignment.Questions, model.AssignmentQuestion{Question: q.Question, Answer: q.Answer})
	}

	if err := s.AssignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	if assignment.Questions == nil {
		assignment.Questions = []model.AssignmentQuestion{}
	}
	return assignment, nil
}

func (s *AssignmentService) List(ctx context.Context, p model.Principal, courseID *uint) ([]model.Assignment, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.List(ctx, &p.ID, courseID)
}

func (s *AssignmentService) Get(ctx context.Context, p model.Principal, id uint) (*model.Assignment, error) {
	return s.owned(ctx, p, id)
}

func (s *AssignmentService) Update(ctx context.Context, p model.Principal, id uint, u repository.AssignmentUpdate) (*model.Assignment, error) {
	current, err := s.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return nil, util.Validation("assignment name must not be empty")
	}

	start, end := current.StartDate, current.EndDate
	if u.StartDate != nil {
		start = u.StartDate
	}
	if u.EndDate != nil {
		end = u.EndDate
	}
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}
	if err := checkCourseOwner(ctx, s.CourseRepo, p, u.CourseID); err != nil {
		return nil, err
	}

	if err := s.AssignmentRepo.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.FindByID(ctx, id)
}

func validateChange(action repository.QuestionAction, id uint, question *string) error {
	if !action.Valid() {
		return util.Validation("action must be create, update or delete")
	}
	if action == repository.ActionCreate {
		if question == nil || strings.TrimSpace(*question) == "" {
			return util.Validation("question text is required when creating")
		}
		return nil
	}
	if id == 0 {
		return util.Validation("question id is required for %s", action)
	}
	if question != nil && strings.TrimSpace(*question) == "" {
		return util.Validation("question text must not be empty")
	}
	return nil
}

// ApplyQuestionChanges 批量增删改题目，全部成功或全部回滚
func (s *AssignmentService) ApplyQuestionChanges(ctx context.Context, p model.Principal, id uint, changes []repository.AssignmentQuestionChange) (*model.Assignment, error) {
	if len(changes) == 0 {
		return nil, util.Validation("no question changes")
	}
	for _, ch := range changes {
		if err := validateChange(ch.Action, ch.ID, ch.Question); err != nil {
			return nil, err
		}
	}
	if _, err := s.owned(ctx, p, id); err != nil {
		return nil, err
	}
	if _, err := s.AssignmentRepo.ApplyQuestionChanges(ctx, id, changes); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.FindByID(ctx, id)
}

// Delete 作业及其题目一并软删除
func (s *AssignmentService) Delete(ctx context.Context, p model.Principal, id uint) error {
	if _, err := s.owned(ctx, p, id); err != nil {
		return err
	}
	return cascadeDelete(ctx, s.Cascade, p, repository.KindAssignment, id)
}

func (s *AssignmentService) ListSubmissions(ctx context.Context, p model.Principal, id uint) ([]model.SubmissionRow, error) {
	if _, err := s.owned(ctx, p, id); err != nil {
		return nil, err
	}
	return s.SubmissionRepo.ListAssignmentSubmissions(ctx, id)
}

// hideAnswers 学生端不返回参考答案
func hideAnswers(a *model.Assignment) {
	for i := range a.Questions {
		a.Questions[i].Answer = ""
	}
}

func (s *AssignmentService) ListForUser(ctx context.Context, courseID *uint) ([]model.Assignment, error) {
	assignments, err := s.AssignmentRepo.List(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		hideAnswers(&assignments[i])
	}
	return assignments, nil
}

func (s *AssignmentService) GetForUser(ctx context.Context, id uint) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hideAnswers(assignment)
	return assignment, nil
}
