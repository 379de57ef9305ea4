package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/microcourses/microcourses-web/internal/flash"
	"github.com/microcourses/microcourses-web/internal/middleware"
	"github.com/microcourses/microcourses-web/internal/upstream"
	"github.com/microcourses/microcourses-web/internal/validator"
	"github.com/microcourses/microcourses-web/internal/viewstate"
)

// creatorTabs is the fixed tab set of the creator dashboard.
var creatorTabs = []string{"dashboard", "mycourses", "create", "addlesson", "earnings", "settings"}

// CreatorHandler serves the creator dashboard, the my-courses screen, and
// the authoring actions.
type CreatorHandler struct {
	client *upstream.Client
	states *viewstate.Registry
	log    zerolog.Logger
}

// NewCreatorHandler creates a new CreatorHandler.
func NewCreatorHandler(client *upstream.Client, states *viewstate.Registry, log zerolog.Logger) *CreatorHandler {
	return &CreatorHandler{client: client, states: states, log: log}
}

// Dashboard godoc
// GET /dashboard/creator?tab=
// Renders the creator dashboard. The add-lesson tab needs the creator's own
// course list for its dropdown and fetches it on first visit.
func (h *CreatorHandler) Dashboard(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))
	tab := validTab(c.DefaultQuery("tab", "dashboard"), creatorTabs)

	if tab == "addlesson" {
		if _, ok := st.Mine.Get(); !ok {
			h.loadMine(c, st)
		}
	}

	mine, _ := st.Mine.Get()

	c.HTML(http.StatusOK, "creator.html", gin.H{
		"Name":  sess.Name(),
		"Tab":   tab,
		"Flash": flash.Take(c),
		"Mine":  mine,
	})
}

// MyCourses godoc
// GET /my-courses?course=&lesson=
// Lists the creator's courses with review-status badges. A plain navigation
// refetches the list; disclosure params toggle the one-open lesson and
// content panels, fetching a course's lessons when its panel opens.
func (h *CreatorHandler) MyCourses(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))

	courseParam := queryInt(c, "course")
	lessonParam := queryInt(c, "lesson")

	if courseParam == 0 && lessonParam == 0 {
		h.loadMine(c, st)
	}

	if courseParam != 0 {
		if st.ExpandedCourse.Toggle(courseParam) {
			st.ExpandedLesson.Collapse()
			if _, err := st.Lessons.FetchAndStore(courseParam, func() ([]upstream.Lesson, error) {
				return h.client.LessonsByCourse(c.Request.Context(), sess.RawToken, courseParam)
			}); err != nil {
				h.log.Warn().Err(err).Int("course_id", courseParam).Msg("Failed to load lessons")
			}
		}
		c.Redirect(http.StatusFound, "/my-courses")
		return
	}
	if lessonParam != 0 {
		st.ExpandedLesson.Toggle(lessonParam)
		c.Redirect(http.StatusFound, "/my-courses")
		return
	}

	mine, _ := st.Mine.Get()
	expandedCourse, _ := st.ExpandedCourse.Expanded()
	expandedLesson, _ := st.ExpandedLesson.Expanded()

	var lessons []upstream.Lesson
	if expandedCourse != 0 {
		lessons, _ = st.Lessons.Get(expandedCourse)
	}

	c.HTML(http.StatusOK, "mycourses.html", gin.H{
		"Name":           sess.Name(),
		"Flash":          flash.Take(c),
		"Courses":        mine,
		"ExpandedCourse": expandedCourse,
		"ExpandedLesson": expandedLesson,
		"Lessons":        lessons,
	})
}

// ShowCreateCourse godoc
// GET /creator/create-course
// Renders the standalone course submission form.
func (h *CreatorHandler) ShowCreateCourse(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.HTML(http.StatusOK, "create_course.html", gin.H{
		"Name":  sess.Name(),
		"Flash": flash.Take(c),
	})
}

type createCourseForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
}

// CreateCourse godoc
// POST /creator/create-course
// Submits a course for admin review. The cached course list is cleared so
// the next visit shows the new pending entry.
func (h *CreatorHandler) CreateCourse(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))

	var form createCourseForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Error(c, flash.Message(flash.CodeInvalidForm))
		c.Redirect(http.StatusFound, "/creator/create-course")
		return
	}

	err := h.client.CreateCourse(c.Request.Context(), sess.RawToken, upstream.CreateCourseRequest{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
	})
	if err != nil {
		flashUpstreamError(c, err, flash.CodeCourseFailed)
		c.Redirect(http.StatusFound, "/creator/create-course")
		return
	}

	st.Mine.Clear()
	flash.Success(c, flash.Message(flash.CodeCourseSubmitted))
	c.Redirect(http.StatusFound, "/dashboard/creator?tab=create")
}

type addLessonForm struct {
	CourseID int    `form:"course_id" binding:"required"`
	Title    string `form:"title" binding:"required"`
	Content  string `form:"content" binding:"required"`
}

// AddLesson godoc
// POST /creator/add-lesson
// Adds a lesson to one of the creator's courses. The course's cached lesson
// list is dropped so the next expansion fetches the fresh one.
func (h *CreatorHandler) AddLesson(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))

	var form addLessonForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Error(c, flash.Message(flash.CodeInvalidForm))
		c.Redirect(http.StatusFound, "/dashboard/creator?tab=addlesson")
		return
	}

	err := h.client.CreateLesson(c.Request.Context(), sess.RawToken, upstream.CreateLessonRequest{
		CourseID: form.CourseID,
		Title:    form.Title,
		Content:  form.Content,
	})
	if err != nil {
		flashUpstreamError(c, err, flash.CodeLessonAddFailed)
		c.Redirect(http.StatusFound, "/dashboard/creator?tab=addlesson")
		return
	}

	st.Lessons.Delete(form.CourseID)
	flash.Success(c, flash.Message(flash.CodeLessonAdded))
	c.Redirect(http.StatusFound, "/dashboard/creator?tab=addlesson")
}

// loadMine refreshes the creator's own course list; a failed read logs and
// leaves the previous snapshot (or an empty view) in place.
func (h *CreatorHandler) loadMine(c *gin.Context, st *viewstate.State) {
	sess := middleware.GetSession(c)
	if _, err := st.Mine.FetchAndStore(func() ([]upstream.Course, error) {
		return h.client.MyCourses(c.Request.Context(), sess.RawToken)
	}); err != nil {
		h.log.Warn().Err(err).Msg("Failed to load creator courses")
	}
}
