package upstream

import "context"

// MyCourses lists the authenticated creator's own courses, whatever their
// review status. GET /creator/my-courses.
func (c *Client) MyCourses(ctx context.Context, token string) ([]Course, error) {
	var out []Course
	resp, err := c.req(ctx, token).
		SetResult(&out).
		Get("/creator/my-courses")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Course{}
	}
	return out, nil
}

// CreateCourseRequest submits a new course for admin review.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreateCourse submits a course. POST /creator/courses. The course enters
// the review queue as Pending; nothing is published until approval.
func (c *Client) CreateCourse(ctx context.Context, token string, req CreateCourseRequest) error {
	resp, err := c.req(ctx, token).
		SetBody(req).
		Post("/creator/courses")
	return c.check(resp, err)
}
