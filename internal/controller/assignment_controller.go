package controller

import (
	"course_backend/internal/repository"
	"course_backend/internal/service"
	"course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// swagger:model AssignmentQuestionRequest
type AssignmentQuestionRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
}

// swagger:model CreateAssignmentRequest
type CreateAssignmentRequest struct {
	Name      string                      `json:"name" binding:"required"`
	CourseID  *uint                       `json:"courseId"`
	StartDate *string                     `json:"startDate"`
	EndDate   *string                     `json:"endDate"`
	Questions []AssignmentQuestionRequest `json:"questions" binding:"omitempty,dive"`
}

// swagger:model UpdateAssignmentRequest
type UpdateAssignmentRequest struct {
	Name      *string `json:"name"`
	CourseID  *uint   `json:"courseId"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// AssignmentQuestionChangeRequest delete 只需 id，create 不需要 id
// swagger:model AssignmentQuestionChangeRequest
type AssignmentQuestionChangeRequest struct {
	Action   string  `json:"action" binding:"required,oneof=create update delete"`
	ID       uint    `json:"id"`
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// swagger:model AssignmentQuestionChangesRequest
type AssignmentQuestionChangesRequest struct {
	Questions []AssignmentQuestionChangeRequest `json:"questions" binding:"required,min=1,dive"`
}

// CreateAssignment godoc
// @Summary 创建作业
// @Tags 教师-作业
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAssignmentRequest true "作业信息"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response
// @Router /teacher/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	start, err := parseOptionalTime("startDate", req.StartDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	end, err := parseOptionalTime("endDate", req.EndDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	in := service.CreateAssignmentInput{Name: req.Name, CourseID: req.CourseID, StartDate: start, EndDate: end}
	for _, q := range req.Questions {
		in.Questions = append(in.Questions, service.AssignmentQuestionInput{Question: q.Question, Answer: q.Answer})
	}

	assignment, err := c.AssignmentService.Create(ctx.Request.Context(), p, in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// ListAssignments godoc
// @Summary 我的作业
// @Tags 教师-作业
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "按课程过滤"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /teacher/assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, err := util.ParseOptionalUintQuery(ctx, "courseId")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	assignments, err := c.AssignmentService.List(ctx.Request.Context(), p, courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// GetAssignment godoc
// @Summary 作业详情（含参考答案）
// @Tags 教师-作业
// @Produce json
// @Security BearerAuth
// @Param assignmentId path int true "作业ID"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Router /teacher/assignments/{assignmentId} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}
	assignment, err := c.AssignmentService.Get(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// UpdateAssignment godoc
// @Summary 修改作业
// @Tags 教师-作业
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignmentId path int true "作业ID"
// @Param body body UpdateAssignmentRequest true "要修改的字段"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Router /teacher/assignments/{assignmentId} [patch]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}
	var req UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	start, err := parseOptionalTime("startDate", req.StartDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	end, err := parseOptionalTime("endDate", req.EndDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	assignment, err := c.AssignmentService.Update(ctx.Request.Context(), p, id, repository.AssignmentUpdate{
		Name:      req.Name,
		CourseID:  req.CourseID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// UpdateAssignmentQuestions godoc
// @Summary 批量修改作业题目
// @Description 每项 action 为 create、update 或 delete，全部在一个事务中执行
// @Tags 教师-作业
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignmentId path int true "作业ID"
// @Param body body AssignmentQuestionChangesRequest true "题目变更"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Router /teacher/assignments/{assignmentId}/questions [patch]
func (c *AssignmentController) UpdateAssignmentQuestions(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}
	var req AssignmentQuestionChangesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	changes := make([]repository.AssignmentQuestionChange, len(req.Questions))
	for i, q := range req.Questions {
		changes[i] = repository.AssignmentQuestionChange{
			Action:   repository.QuestionAction(q.Action),
			ID:       q.ID,
			Question: q.Question,
			Answer:   q.Answer,
		}
	}

	assignment, err := c.AssignmentService.ApplyQuestionChanges(ctx.Request.Context(), p, id, changes)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// DeleteAssignment godoc
// @Summary 删除作业
// @Description 作业与其全部题目在同一事务中软删除
// @Tags 教师-作业
// @Produce json
// @Security BearerAuth
// @Param assignmentId path int true "作业ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "作业不存在或已删除"
// @Router /teacher/assignments/{assignmentId} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}
	if err := c.AssignmentService.Delete(ctx.Request.Context(), p, id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// ListAssignmentSubmissions godoc
// @Summary 作业提交记录
// @Tags 教师-作业
// @Produce json
// @Security BearerAuth
// @Param assignmentId path int true "作业ID"
// @Success 200 {object} util.Response{data=[]model.SubmissionRow}
// @Router /teacher/assignments/{assignmentId}/submissions [get]
func (c *AssignmentController) ListAssignmentSubmissions(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}
	rows, err := c.AssignmentService.ListSubmissions(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// ListUserAssignments godoc
// @Summary 作业列表（不含参考答案）
// @Tags 学生-作业
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "按课程过滤"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /user/assignments [get]
func (c *AssignmentController) ListUserAssignments(ctx *gin.Context) {
	courseID, err := util.ParseOptionalUintQuery(ctx, "courseId")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	assignments, err := c.AssignmentService.ListForUser(ctx.Request.Context(), courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// GetUserAssignment godoc
// @Summary 作业详情（不含参考答案）
// @Tags 学生-作业
// @Produce json
// @Security BearerAuth
// @Param assignmentId path int true "作业ID"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Router /user/assignments/{assignmentId} [get]
func (c *AssignmentController) GetUserAssignment(ctx *gin.Context) {
	id, ok := pathID(ctx, "assignmentId")
	if !ok {
		return
	}
	assignment, err := c.AssignmentService.GetForUser(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}
