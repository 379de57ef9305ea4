package handler

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/microcourses/microcourses-web/internal/flash"
	"github.com/microcourses/microcourses-web/internal/middleware"
	"github.com/microcourses/microcourses-web/internal/upstream"
	"github.com/microcourses/microcourses-web/internal/validator"
	"github.com/microcourses/microcourses-web/internal/viewstate"
)

// studentTabs is the fixed tab set of the student dashboard.
var studentTabs = []string{"dashboard", "available", "mycourses", "progress", "settings"}

// StudentHandler serves the student dashboard and its actions.
type StudentHandler struct {
	client *upstream.Client
	states *viewstate.Registry
	log    zerolog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(client *upstream.Client, states *viewstate.Registry, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{client: client, states: states, log: log}
}

// Dashboard godoc
// GET /dashboard/student?tab=&course=&lesson=
// Renders the student dashboard. The first request of a session fetches the
// approved catalog and the enrollments together; tab switches render from
// cache, disclosure params toggle the one-open course/lesson panels.
func (h *StudentHandler) Dashboard(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))
	ctx := c.Request.Context()
	tab := validTab(c.DefaultQuery("tab", "dashboard"), studentTabs)

	if st.FirstVisit("student:mount") {
		// Both lists load together; each fills an independent slot, so
		// completion order does not matter. A failed read just leaves its
		// view empty.
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := st.Approved.FetchAndStore(func() ([]upstream.Course, error) {
				return h.client.ApprovedCourses(ctx)
			}); err != nil {
				h.log.Warn().Err(err).Msg("Failed to load approved courses")
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := st.Enrolled.FetchAndStore(func() ([]upstream.Course, error) {
				return h.client.Enrollments(ctx, sess.RawToken)
			}); err != nil {
				h.log.Warn().Err(err).Msg("Failed to load enrollments")
			}
		}()
		wg.Wait()
	}

	// Navigating back to a tab whose slot never filled retries the fetch;
	// recovery is always user-initiated.
	switch tab {
	case "available":
		if _, ok := st.Approved.Get(); !ok {
			if _, err := st.Approved.FetchAndStore(func() ([]upstream.Course, error) {
				return h.client.ApprovedCourses(ctx)
			}); err != nil {
				h.log.Warn().Err(err).Msg("Failed to load approved courses")
			}
		}
	case "mycourses":
		if _, ok := st.Enrolled.Get(); !ok {
			if _, err := st.Enrolled.FetchAndStore(func() ([]upstream.Course, error) {
				return h.client.Enrollments(ctx, sess.RawToken)
			}); err != nil {
				h.log.Warn().Err(err).Msg("Failed to load enrollments")
			}
		}
	}

	if tab == "mycourses" {
		if id := queryInt(c, "course"); id != 0 {
			if st.ExpandedCourse.Toggle(id) {
				st.ExpandedLesson.Collapse()
				h.loadCourseDetail(c, st, id)
			}
			c.Redirect(http.StatusFound, "/dashboard/student?tab=mycourses")
			return
		}
		if id := queryInt(c, "lesson"); id != 0 {
			st.ExpandedLesson.Toggle(id)
			c.Redirect(http.StatusFound, "/dashboard/student?tab=mycourses")
			return
		}
	}

	approved, _ := st.Approved.Get()
	enrolled, _ := st.Enrolled.Get()

	expandedCourse, _ := st.ExpandedCourse.Expanded()
	expandedLesson, _ := st.ExpandedLesson.Expanded()

	var lessons []upstream.Lesson
	var progress *upstream.Progress
	if expandedCourse != 0 {
		lessons, _ = st.Lessons.Get(expandedCourse)
		if p, ok := st.Progress.Get(expandedCourse); ok {
			progress = &p
		}
	}

	c.HTML(http.StatusOK, "student.html", gin.H{
		"Name":           sess.Name(),
		"Tab":            tab,
		"Flash":          flash.Take(c),
		"Approved":       approved,
		"Enrolled":       enrolled,
		"ExpandedCourse": expandedCourse,
		"ExpandedLesson": expandedLesson,
		"Lessons":        lessons,
		"Progress":       progress,
		"ProgressList":   st.Progress.Values(),
	})
}

// loadCourseDetail fetches lessons and progress for one course into their
// keyed slots. Read failures log and leave the panels empty.
func (h *StudentHandler) loadCourseDetail(c *gin.Context, st *viewstate.State, courseID int) {
	sess := middleware.GetSession(c)
	ctx := c.Request.Context()

	if _, err := st.Lessons.FetchAndStore(courseID, func() ([]upstream.Lesson, error) {
		return h.client.LessonsByCourse(ctx, sess.RawToken, courseID)
	}); err != nil {
		h.log.Warn().Err(err).Int("course_id", courseID).Msg("Failed to load lessons")
	}

	if _, err := st.Progress.FetchAndStore(courseID, func() (upstream.Progress, error) {
		return h.client.CourseProgress(ctx, sess.RawToken, courseID)
	}); err != nil {
		h.log.Warn().Err(err).Int("course_id", courseID).Msg("Failed to load progress")
	}
}

type enrollForm struct {
	CourseID int `form:"course_id" binding:"required"`
}

// Enroll godoc
// POST /dashboard/student/enroll
// Enrolls in a course. On success the course is appended to the cached
// enrollment list locally; on failure the cache stays untouched.
func (h *StudentHandler) Enroll(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))

	var form enrollForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Error(c, flash.Message(flash.CodeInvalidForm))
		c.Redirect(http.StatusFound, "/dashboard/student?tab=available")
		return
	}

	if err := h.client.Enroll(c.Request.Context(), sess.RawToken, form.CourseID); err != nil {
		flashUpstreamError(c, err, flash.CodeEnrollFailed)
		c.Redirect(http.StatusFound, "/dashboard/student?tab=available")
		return
	}

	title := ""
	if approved, ok := st.Approved.Get(); ok {
		for _, course := range approved {
			if course.ID != form.CourseID {
				continue
			}
			title = course.Title
			st.Enrolled.Mutate(func(list []upstream.Course) []upstream.Course {
				for _, e := range list {
					if e.ID == course.ID {
						return list
					}
				}
				return append(list, course)
			})
			break
		}
	}

	if title != "" {
		flash.Success(c, fmt.Sprintf("Enrolled in %q.", title))
	} else {
		flash.Success(c, flash.Message(flash.CodeEnrolled))
	}
	c.Redirect(http.StatusFound, "/dashboard/student?tab=available")
}

type completeLessonForm struct {
	LessonID int `form:"lesson_id" binding:"required"`
	CourseID int `form:"course_id" binding:"required"`
}

// CompleteLesson godoc
// POST /dashboard/student/complete-lesson
// Marks a lesson done, then refetches the course's progress snapshot. The
// completion set is server-derived, never edited locally.
func (h *StudentHandler) CompleteLesson(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))

	var form completeLessonForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Error(c, flash.Message(flash.CodeInvalidForm))
		c.Redirect(http.StatusFound, "/dashboard/student?tab=mycourses")
		return
	}

	if err := h.client.CompleteLesson(c.Request.Context(), sess.RawToken, form.LessonID); err != nil {
		flashUpstreamError(c, err, flash.CodeCompleteFailed)
		c.Redirect(http.StatusFound, "/dashboard/student?tab=mycourses")
		return
	}

	if _, err := st.Progress.FetchAndStore(form.CourseID, func() (upstream.Progress, error) {
		return h.client.CourseProgress(c.Request.Context(), sess.RawToken, form.CourseID)
	}); err != nil {
		h.log.Warn().Err(err).Int("course_id", form.CourseID).Msg("Failed to refresh progress")
	}

	flash.Success(c, flash.Message(flash.CodeLessonCompleted))
	c.Redirect(http.StatusFound, "/dashboard/student?tab=mycourses")
}

// Certificate godoc
// GET /dashboard/student/certificate/:id
// Streams the course certificate PDF through to the browser unchanged.
func (h *StudentHandler) Certificate(c *gin.Context) {
	sess := middleware.GetSession(c)
	courseID := paramInt(c, "id")

	body, contentType, err := h.client.Certificate(c.Request.Context(), sess.RawToken, courseID)
	if err != nil {
		// A 404 means the course is not completed (or unknown), not a
		// generation failure.
		if upstream.IsNotFound(err) {
			flash.Error(c, flash.Message(flash.CodeCertificateNotReady))
		} else {
			flashUpstreamError(c, err, flash.CodeCertificateFailed)
		}
		c.Redirect(http.StatusFound, "/dashboard/student?tab=progress")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Certificate_Course_%d.pdf", courseID))
	c.Data(http.StatusOK, contentType, body)
}
