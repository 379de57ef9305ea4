package handler

import (
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

// adminTabs is the fixed tab set of the admin dashboard.
var adminTabs = []string{"overview", "courses", "users"}

// AdminHandler serves the admin dashboard and moderation actions.
type AdminHandler struct {
	client *upstream.Client
	states *viewstate.Registry
	log    zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(client *upstream.Client, states *viewstate.Registry, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{client: client, states: states, log: log}
}

// Dashboard godoc
// GET /dashboard/admin?tab=
// Renders the admin dashboard. The first request of a session fetches stats,
// pending courses, and users together; the three slots are independent, so
// completion order between them carries no meaning.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))
	tab := validTab(c.DefaultQuery("tab", "overview"), adminTabs)

	if st.FirstVisit("admin:mount") {
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			h.loadStats(c, st)
		}()
		go func() {
			defer wg.Done()
			h.loadPending(c, st)
		}()
		go func() {
			defer wg.Done()
			h.loadUsers(c, st)
		}()
		wg.Wait()
	}

	// Revisiting a tab whose slot never filled retries its fetch.
	switch tab {
	case "overview":
		if _, ok := st.Stats.Get(); !ok {
			h.loadStats(c, st)
		}
	case "courses":
		if _, ok := st.Pending.Get(); !ok {
			h.loadPending(c, st)
		}
	case "users":
		if _, ok := st.Users.Get(); !ok {
			h.loadUsers(c, st)
		}
	}

	stats, _ := st.Stats.Get()
	pending, _ := st.Pending.Get()
	users, _ := st.Users.Get()

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Name":    sess.Name(),
		"Tab":     tab,
		"Flash":   flash.Take(c),
		"Stats":   stats,
		"Pending": pending,
		"Users":   users,
	})
}

// Approve godoc
// POST /dashboard/admin/approve/:id
// Approves a pending course. On success the course is removed from the
// cached pending list without a refetch, and the stats counters refresh.
func (h *AdminHandler) Approve(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))
	courseID := paramInt(c, "id")

	if err := h.client.ApproveCourse(c.Request.Context(), sess.RawToken, courseID); err != nil {
		flashUpstreamError(c, err, flash.CodeApproveFailed)
		c.Redirect(http.StatusFound, "/dashboard/admin?tab=courses")
		return
	}

	st.Pending.Mutate(func(list []upstream.Course) []upstream.Course {
		// Build a fresh slice: snapshots handed out by Get must not see the
		// edit through shared backing storage.
		out := make([]upstream.Course, 0, len(list))
		for _, course := range list {
			if course.ID != courseID {
				out = append(out, course)
			}
		}
		return out
	})
	h.loadStats(c, st)

	flash.Success(c, flash.Message(flash.CodeCourseApproved))
	c.Redirect(http.StatusFound, "/dashboard/admin?tab=courses")
}

type updateRoleForm struct {
	Role string `form:"role" binding:"required,oneof=student creator admin"`
}

// UpdateRole godoc
// POST /dashboard/admin/users/:id/role
// Changes an account's role, then refetches the user list.
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	sess := middleware.GetSession(c)
	st := h.states.Get(middleware.GetSID(c))
	userID := paramInt(c, "id")

	var form updateRoleForm
	if fields := validator.BindForm(c, &form); fields != nil {
		flash.Error(c, flash.Message(flash.CodeInvalidForm))
		c.Redirect(http.StatusFound, "/dashboard/admin?tab=users")
		return
	}

	if err := h.client.UpdateUserRole(c.Request.Context(), sess.RawToken, userID, form.Role); err != nil {
		flashUpstreamError(c, err, flash.CodeRoleUpdateFailed)
		c.Redirect(http.StatusFound, "/dashboard/admin?tab=users")
		return
	}

	h.loadUsers(c, st)

	flash.Success(c, flash.Message(flash.CodeRoleUpdated))
	c.Redirect(http.StatusFound, "/dashboard/admin?tab=users")
}

func (h *AdminHandler) loadStats(c *gin.Context, st *viewstate.State) {
	sess := middleware.GetSession(c)
	if _, err := st.Stats.FetchAndStore(func() (upstream.Stats, error) {
		return h.client.PlatformStats(c.Request.Context(), sess.RawToken)
	}); err != nil {
		h.log.Warn().Err(err).Msg("Failed to load platform stats")
	}
}

func (h *AdminHandler) loadPending(c *gin.Context, st *viewstate.State) {
	sess := middleware.GetSession(c)
	if _, err := st.Pending.FetchAndStore(func() ([]upstream.Course, error) {
		return h.client.PendingCourses(c.Request.Context(), sess.RawToken)
	}); err != nil {
		h.log.Warn().Err(err).Msg("Failed to load pending courses")
	}
}

func (h *AdminHandler) loadUsers(c *gin.Context, st *viewstate.State) {
	sess := middleware.GetSession(c)
	if _, err := st.Users.FetchAndStore(func() ([]upstream.User, error) {
		return h.client.Users(c.Request.Context(), sess.RawToken)
	}); err != nil {
		h.log.Warn().Err(err).Msg("Failed to load users")
	}
}
