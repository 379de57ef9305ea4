package upstream

import (
	"context"
	"fmt"
)

// ApprovedCourses lists the public catalog. GET /courses/approved, no auth.
func (c *Client) ApprovedCourses(ctx context.Context) ([]Course, error) {
	var out []Course
	resp, err := c.req(ctx, "").
		SetResult(&out).
		Get("/courses/approved")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// LessonsByCourse lists the lessons of one course. GET /lessons/course/{id}.
// An empty list is a valid result and distinct from a failed fetch.
func (c *Client) LessonsByCourse(ctx context.Context, token string, courseID int) ([]Lesson, error) {
	var out []Lesson
	resp, err := c.req(ctx, token).
		SetResult(&out).
		Get(fmt.Sprintf("/lessons/course/%d", courseID))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Lesson{}
	}
	return out, nil
}

// CreateLessonRequest adds a lesson to one of the creator's courses.
type CreateLessonRequest struct {
	CourseID int    `json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// CreateLesson adds a lesson. POST /lessons/.
func (c *Client) CreateLesson(ctx context.Context, token string, req CreateLessonRequest) error {
	resp, err := c.req(ctx, token).
		SetBody(req).
		Post("/lessons/")
	return c.check(resp, err)
}
