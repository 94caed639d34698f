package service

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/repository"
	"course_backend/internal/util"
	"strings"
	"time"
)

type QuizService struct {
	QuizRepo       *repository.QuizRepository
	CourseRepo     *repository.CourseRepository
	SubmissionRepo *repository.SubmissionRepository
	Cascade        Deleter
}

func NewQuizService(quizRepo *repository.QuizRepository, courseRepo *repository.CourseRepository, submissionRepo *repository.SubmissionRepository, cascade Deleter) *QuizService {
	return &QuizService{
		QuizRepo:       quizRepo,
		CourseRepo:     courseRepo,
		SubmissionRepo: submissionRepo,
		Cascade:        cascade,
	}
}

type QuizQuestionInput struct {
	Question      string
	Options       []string
	Answer        string
	CorrectAnswer string
}

type CreateQuizInput struct {
	Name      string
	CourseID  *uint
	StartTime *time.Time
	EndTime   *time.Time
	Questions []QuizQuestionInput
}

// validateOptions 选项最多 A-D 四个，正确选项必须指向已有选项
func validateOptions(options []string, correct string) error {
	if len(options) > len(model.QuizOptionTags) {
		return util.Validation("at most %d options are allowed", len(model.QuizOptionTags))
	}
	if !model.IsQuizOptionTag(correct) {
		return util.Validation("correctAnswer must be one of A, B, C, D")
	}
	if len(options) > 0 && int(correct[0]-'A') >= len(options) {
		return util.Validation("correctAnswer %s has no matching option", correct)
	}
	return nil
}

func (s *QuizService) owned(ctx context.Context, p model.Principal, id uint) (*model.Quiz, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	quiz, err := s.QuizRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz.TeacherID != p.ID {
		return nil, util.ErrPermissionDenied
	}
	return quiz, nil
}

func (s *QuizService) Create(ctx context.Context, p model.Principal, in CreateQuizInput) (*model.Quiz, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, util.Validation("quiz name is required")
	}
	if err := validatePeriod(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	if err := checkCourseOwner(ctx, s.CourseRepo, p, in.CourseID); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		TeacherID: p.ID,
		CourseID:  in.CourseID,
		Name:      in.Name,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	for _, q := range in.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, util.Validation("question text is required")
		}
		if err := validateOptions(q.Options, q.CorrectAnswer); err != nil {
			return nil, err
		}
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			Question:      q.Question,
			OptionList:    q.Options,
			Answer:        q.Answer,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	if err := s.QuizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	for i := range quiz.Questions {
		quiz.Questions[i].DecodeOptions()
	}
	if quiz.Questions == nil {
		quiz.Questions = []model.QuizQuestion{}
	}
	return quiz, nil
}

func (s *QuizService) List(ctx context.Context, p model.Principal, courseID *uint) ([]model.Quiz, error) {
	if err := requireTeacher(p); err != nil {
		return nil, err
	}
	return s.QuizRepo.List(ctx, &p.ID, courseID)
}

func (s *QuizService) Get(ctx context.Context, p model.Principal, id uint) (*model.Quiz, error) {
	return s.owned(ctx, p, id)
}

func (s *QuizService) Update(ctx context.Context, p model.Principal, id uint, u repository.QuizUpdate) (*model.Quiz, error) {
	current, err := s.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return nil, util.Validation("quiz name must not be empty")
	}

	start, end := current.StartTime, current.EndTime
	if u.StartTime != nil {
		start = u.StartTime
	}
	if u.EndTime != nil {
		end = u.EndTime
	}
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}
	if err := checkCourseOwner(ctx, s.CourseRepo, p, u.CourseID); err != nil {
		return nil, err
	}

	if err := s.QuizRepo.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return s.QuizRepo.FindByID(ctx, id)
}

func (s *QuizService) ApplyQuestionChanges(ctx context.Context, p model.Principal, id uint, changes []repository.QuizQuestionChange) (*model.Quiz, error) {
	if len(changes) == 0 {
		return nil, util.Validation("no question changes")
	}
	current, err := s.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}

	existing := make(map[uint]model.QuizQuestion, len(current.Questions))
	for _, q := range current.Questions {
		existing[q.ID] = q
	}
	for _, ch := range changes {
		if err := validateChange(ch.Action, ch.ID, ch.Question); err != nil {
			return nil, err
		}
		switch ch.Action {
		case repository.ActionCreate:
			if ch.CorrectAnswer == nil {
				return nil, util.Validation("correctAnswer is required when creating")
			}
			if err := validateOptions(ch.Options, *ch.CorrectAnswer); err != nil {
				return nil, err
			}
		case repository.ActionUpdate:
			if ch.Options == nil && ch.CorrectAnswer == nil {
				continue
			}
			// 未修改的一方取当前值再整体校验
			q, ok := existing[ch.ID]
			if !ok {
				return nil, util.NotFound("quiz_questions %d", ch.ID)
			}
			options, correct := q.OptionList, q.CorrectAnswer
			if ch.Options != nil {
				options = ch.Options
			}
			if ch.CorrectAnswer != nil {
				correct = *ch.CorrectAnswer
			}
			if err := validateOptions(options, correct); err != nil {
				return nil, err
			}
		}
	}

	if _, err := s.QuizRepo.ApplyQuestionChanges(ctx, id, changes); err != nil {
		return nil, err
	}
	return s.QuizRepo.FindByID(ctx, id)
}

// Delete 测验及其题目一并软删除
func (s *QuizService) Delete(ctx context.Context, p model.Principal, id uint) error {
	if _, err := s.owned(ctx, p, id); err != nil {
		return err
	}
	return cascadeDelete(ctx, s.Cascade, p, repository.KindQuiz, id)
}

func (s *QuizService) ListSubmissions(ctx context.Context, p model.Principal, id uint) ([]model.SubmissionRow, error) {
	if _, err := s.owned(ctx, p, id); err != nil {
		return nil, err
	}
	return s.SubmissionRepo.ListQuizSubmissions(ctx, id)
}

// hideCorrectOptions 学生端不返回正确选项和解析
func hideCorrectOptions(q *model.Quiz) {
	for i := range q.Questions {
		q.Questions[i].CorrectAnswer = ""
		q.Questions[i].Answer = ""
	}
}

func (s *QuizService) ListForUser(ctx context.Context, courseID *uint) ([]model.Quiz, error) {
	quizzes, err := s.QuizRepo.List(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	for i := range quizzes {
		hideCorrectOptions(&quizzes[i])
	}
	return quizzes, nil
}

func (s *QuizService) GetForUser(ctx context.Context, id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hideCorrectOptions(quiz)
	return quiz, nil
}
