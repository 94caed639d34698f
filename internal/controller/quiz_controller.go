package controller

import (
	"course_backend/internal/repository"
	"course_backend/internal/service"
	"course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// swagger:model QuizQuestionRequest
type QuizQuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"max=4"`
	Answer        string   `json:"answer"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required,oneof=A B C D"`
}

// swagger:model CreateQuizRequest
type CreateQuizRequest struct {
	Name      string                `json:"name" binding:"required"`
	CourseID  *uint                 `json:"courseId"`
	StartTime *string               `json:"startTime"`
	EndTime   *string               `json:"endTime"`
	Questions []QuizQuestionRequest `json:"questions" binding:"omitempty,dive"`
}

// swagger:model UpdateQuizRequest
type UpdateQuizRequest struct {
	Name      *string `json:"name"`
	CourseID  *uint   `json:"courseId"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// swagger:model QuizQuestionChangeRequest
type QuizQuestionChangeRequest struct {
	Action        string   `json:"action" binding:"required,oneof=create update delete"`
	ID            uint     `json:"id"`
	Question      *string  `json:"question"`
	Options       []string `json:"options" binding:"max=4"`
	Answer        *string  `json:"answer"`
	CorrectAnswer *string  `json:"correctAnswer"`
}

// swagger:model QuizQuestionChangesRequest
type QuizQuestionChangesRequest struct {
	Questions []QuizQuestionChangeRequest `json:"questions" binding:"required,min=1,dive"`
}

// CreateQuiz godoc
// @Summary 创建测验
// @Tags 教师-测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateQuizRequest true "测验信息"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /teacher/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	start, err := parseOptionalTime("startTime", req.StartTime)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	end, err := parseOptionalTime("endTime", req.EndTime)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	in := service.CreateQuizInput{Name: req.Name, CourseID: req.CourseID, StartTime: start, EndTime: end}
	for _, q := range req.Questions {
		in.Questions = append(in.Questions, service.QuizQuestionInput{
			Question:      q.Question,
			Options:       q.Options,
			Answer:        q.Answer,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	quiz, err := c.QuizService.Create(ctx.Request.Context(), p, in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// ListQuizzes godoc
// @Summary 我的测验
// @Tags 教师-测验
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "按课程过滤"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /teacher/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, err := util.ParseOptionalUintQuery(ctx, "courseId")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	quizzes, err := c.QuizService.List(ctx.Request.Context(), p, courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary 测验详情（含正确选项）
// @Tags 教师-测验
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /teacher/quizzes/{quizId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	quiz, err := c.QuizService.Get(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// UpdateQuiz godoc
// @Summary 修改测验
// @Tags 教师-测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "测验ID"
// @Param body body UpdateQuizRequest true "要修改的字段"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /teacher/quizzes/{quizId} [patch]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	var req UpdateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	start, err := parseOptionalTime("startTime", req.StartTime)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	end, err := parseOptionalTime("endTime", req.EndTime)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	quiz, err := c.QuizService.Update(ctx.Request.Context(), p, id, repository.QuizUpdate{
		Name:      req.Name,
		CourseID:  req.CourseID,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// UpdateQuizQuestions godoc
// @Summary 批量修改测验题目
// @Description 每项 action 为 create、update 或 delete，全部在一个事务中执行
// @Tags 教师-测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "测验ID"
// @Param body body QuizQuestionChangesRequest true "题目变更"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /teacher/quizzes/{quizId}/questions [patch]
func (c *QuizController) UpdateQuizQuestions(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	var req QuizQuestionChangesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	changes := make([]repository.QuizQuestionChange, len(req.Questions))
	for i, q := range req.Questions {
		changes[i] = repository.QuizQuestionChange{
			Action:        repository.QuestionAction(q.Action),
			ID:            q.ID,
			Question:      q.Question,
			Options:       q.Options,
			Answer:        q.Answer,
			CorrectAnswer: q.CorrectAnswer,
		}
	}

	quiz, err := c.QuizService.ApplyQuestionChanges(ctx.Request.Context(), p, id, changes)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary 删除测验
// @Description 测验与其全部题目在同一事务中软删除
// @Tags 教师-测验
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "测验不存在或已删除"
// @Router /teacher/quizzes/{quizId} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	if err := c.QuizService.Delete(ctx.Request.Context(), p, id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// ListQuizSubmissions godoc
// @Summary 测验提交记录
// @Tags 教师-测验
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response{data=[]model.SubmissionRow}
// @Router /teacher/quizzes/{quizId}/submissions [get]
func (c *QuizController) ListQuizSubmissions(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	rows, err := c.QuizService.ListSubmissions(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// ListUserQuizzes godoc
// @Summary 测验列表（不含正确选项）
// @Tags 学生-测验
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "按课程过滤"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /user/quizzes [get]
func (c *QuizController) ListUserQuizzes(ctx *gin.Context) {
	courseID, err := util.ParseOptionalUintQuery(ctx, "courseId")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	quizzes, err := c.QuizService.ListForUser(ctx.Request.Context(), courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetUserQuiz godoc
// @Summary 测验详情（不含正确选项）
// @Tags 学生-测验
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /user/quizzes/{quizId} [get]
func (c *QuizController) GetUserQuiz(ctx *gin.Context) {
	id, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	quiz, err := c.QuizService.GetForUser(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}
