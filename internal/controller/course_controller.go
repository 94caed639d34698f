package controller

import (
	"course_backend/internal/repository"
	"course_backend/internal/service"
	"course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	URLs        []string `json:"urls" binding:"omitempty,dive,required"`
}

// UpdateCourseRequest 未提供的字段保持不变
// swagger:model UpdateCourseRequest
type UpdateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// swagger:model UpdateCourseURLRequest
type UpdateCourseURLRequest struct {
	URL string `json:"url" binding:"required"`
}

// CreateCourse godoc
// @Summary 创建课程
// @Tags 教师-课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /teacher/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(ctx.Request.Context(), p, service.CreateCourseInput{
		Name:        req.Name,
		Description: req.Description,
		URLs:        req.URLs,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// ListTeacherCourses godoc
// @Summary 我的课程
// @Tags 教师-课程
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /teacher/courses [get]
func (c *CourseController) ListTeacherCourses(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courses, err := c.CourseService.ListTeacherCourses(ctx.Request.Context(), p)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetTeacherCourse godoc
// @Summary 课程详情
// @Tags 教师-课程
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teacher/courses/{courseId} [get]
func (c *CourseController) GetTeacherCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	course, err := c.CourseService.GetTeacherCourse(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// UpdateCourse godoc
// @Summary 修改课程
// @Tags 教师-课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Param body body UpdateCourseRequest true "要修改的字段"
// @Success 200 {object} util.Response{data=model.Course}
// @Router /teacher/courses/{courseId} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	var req UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(ctx.Request.Context(), p, id, repository.CourseUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// UpdateCourseURL godoc
// @Summary 修改课程链接
// @Tags 教师-课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Param urlId path int true "链接ID"
// @Param body body UpdateCourseURLRequest true "新链接"
// @Success 200 {object} util.Response
// @Router /teacher/courses/{courseId}/urls/{urlId} [patch]
func (c *CourseController) UpdateCourseURL(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	urlID, ok := pathID(ctx, "urlId")
	if !ok {
		return
	}
	var req UpdateCourseURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.UpdateCourseURL(ctx.Request.Context(), p, courseID, urlID, req.URL); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": urlID, "url": req.URL})
}

// UploadMaterial godoc
// @Summary 上传课程资料
// @Description 文件保存到本地或 MinIO，并作为新的课程链接
// @Tags 教师-课程
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Param file formData file true "资料文件"
// @Success 201 {object} util.Response{data=model.CourseURL}
// @Router /teacher/courses/{courseId}/materials [post]
func (c *CourseController) UploadMaterial(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	courseURL, err := c.CourseService.UploadMaterial(ctx.Request.Context(), p, courseID, file)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, courseURL)
}

// DeleteCourse godoc
// @Summary 删除课程
// @Description 课程与其全部链接在同一事务中软删除
// @Tags 教师-课程
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "课程不存在或已删除"
// @Router /teacher/courses/{courseId} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	if err := c.CourseService.DeleteCourse(ctx.Request.Context(), p, id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// ListEnrolledUsers godoc
// @Summary 选课学生
// @Tags 教师-课程
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Success 200 {object} util.Response{data=object}
// @Router /teacher/courses/{courseId}/users [get]
func (c *CourseController) ListEnrolledUsers(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	users, err := c.CourseService.ListEnrolledUsers(ctx.Request.Context(), p, id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": len(users), "users": users})
}

// ListCourses godoc
// @Summary 全部课程
// @Tags 学生-课程
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /user/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary 课程详情
// @Tags 学生-课程
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /user/courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	course, err := c.CourseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Enroll godoc
// @Summary 选课
// @Tags 学生-课程
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "课程ID"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response "已选过该课程"
// @Router /user/courses/{courseId}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "courseId")
	if !ok {
		return
	}
	if err := c.CourseService.Enroll(ctx.Request.Context(), p, id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"courseId": id})
}
