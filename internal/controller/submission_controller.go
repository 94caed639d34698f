package controller

import (
	"course_backend/internal/service"
	"course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// SubmitAssignmentRequest answers 与 questionIds 按下标一一对应
// swagger:model SubmitAssignmentRequest
type SubmitAssignmentRequest struct {
	AssignmentID uint     `json:"assignmentId" binding:"required"`
	Answers      []string `json:"answers" binding:"required,min=1"`
	QuestionIDs  []uint   `json:"questionIds" binding:"required,min=1"`
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	QuizID      uint     `json:"quizId" binding:"required"`
	Answers     []string `json:"answers" binding:"required,min=1"`
	QuestionIDs []uint   `json:"questionIds" binding:"required,min=1"`
}

// SubmitAssignment godoc
// @Summary 提交作业
// @Description 按题目 ID 取参考答案自动评分（每题 0-2 分），同一题只能提交一次
// @Tags 学生-作业
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitAssignmentRequest true "答案"
// @Success 201 {object} util.Response{data=service.SubmissionResult}
// @Failure 400 {object} util.Response "答案与题目数量不一致"
// @Failure 404 {object} util.Response "作业或题目不存在"
// @Failure 409 {object} util.Response "已提交过"
// @Router /user/assignments/submit [post]
func (c *SubmissionController) SubmitAssignment(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req SubmitAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inputs, err := service.PairAnswers(req.QuestionIDs, req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	result, err := c.SubmissionService.RecordAssignmentSubmission(ctx.Request.Context(), p, req.AssignmentID, inputs)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// SubmitQuiz godoc
// @Summary 提交测验
// @Description 选项完全一致得 1 分，否则 0 分，同一题只能提交一次
// @Tags 学生-测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitQuizRequest true "答案"
// @Success 201 {object} util.Response{data=service.SubmissionResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /user/quizzes/submit [post]
func (c *SubmissionController) SubmitQuiz(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inputs, err := service.PairAnswers(req.QuestionIDs, req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	result, err := c.SubmissionService.RecordQuizSubmission(ctx.Request.Context(), p, req.QuizID, inputs)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// ListOwnAssignmentSubmissions godoc
// @Summary 我的作业成绩
// @Tags 学生-作业
// @Produce json
// @Security BearerAuth
// @Param assignmentId path int true "作业ID"
// @Success 200 {object} util.Response{data=[]model.AssignmentSubmission}
// @Router /user/submissions/assignments/{assignmentId} [get]
func (c *SubmissionController) ListOwnAssignmentSubmissions(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}
	rows, err := c.SubmissionService.ListOwnAssignmentSubmissions(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// ListOwnQuizSubmissions godoc
// @Summary 我的测验成绩
// @Tags 学生-测验
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response{data=[]model.QuizSubmission}
// @Router /user/submissions/quizzes/{quizId} [get]
func (c *SubmissionController) ListOwnQuizSubmissions(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "quizId")
	if !ok {
		return
	}
	rows, err := c.SubmissionService.ListOwnQuizSubmissions(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
