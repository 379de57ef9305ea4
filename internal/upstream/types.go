package upstream

import "math"

// Course as returned by the API. The API is the owner; this side only holds
// transient cached copies per fetched list.
type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status,omitempty"`
}

// DisplayStatus treats a missing status as Pending, matching how the review
// flow works: a course is pending until an admin approves it.
func (c Course) DisplayStatus() string {
	if c.Status == "" {
		return "Pending"
	}
	return c.Status
}

// Lesson belongs to exactly one course; lesson lists are fetched and cached
// per course id, never across courses.
type Lesson struct {
	ID       int    `json:"id"`
	CourseID int    `json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// Progress is the server-derived completion snapshot for one enrollment.
type Progress struct {
	CourseID         int   `json:"course_id"`
	CompletedLessons []int `json:"completed_lessons"`
	TotalLessons     int   `json:"total_lessons"`
}

// Percent is the completion percentage, rounded. Zero total lessons means
// zero percent, not a division fault.
func (p Progress) Percent() int {
	if p.TotalLessons <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(p.CompletedLessons)) / float64(p.TotalLessons)))
}

// Completed reports whether the lesson id is in the completed set.
func (p Progress) Completed(lessonID int) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// User is the admin view of a platform account.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Stats is the admin platform overview.
type Stats struct {
	TotalUsers       int `json:"total_users"`
	TotalCourses     int `json:"total_courses"`
	ApprovedCourses  int `json:"approved_courses"`
	TotalEnrollments int `json:"total_enrollments"`
}

// TokenResponse is the login result.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
