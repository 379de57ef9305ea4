package upstream

import (
	"context"
	"fmt"
)

// Enrollments lists the courses the student is enrolled in.
// GET /students/enrollments.
func (c *Client) Enrollments(ctx context.Context, token string) ([]Course, error) {
	var out []Course
	resp, err := c.req(ctx, token).
		SetResult(&out).
		Get("/students/enrollments")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Course{}
	}
	return out, nil
}

// Enroll enrolls the student in a course. POST /students/enroll.
func (c *Client) Enroll(ctx context.Context, token string, courseID int) error {
	resp, err := c.req(ctx, token).
		SetBody(map[string]int{"course_id": courseID}).
		Post("/students/enroll")
	return c.check(resp, err)
}

// CompleteLesson marks one lesson done. POST /students/complete-lesson. The
// server owns the completion set; callers refetch progress afterwards.
func (c *Client) CompleteLesson(ctx context.Context, token string, lessonID int) error {
	resp, err := c.req(ctx, token).
		SetBody(map[string]int{"lesson_id": lessonID}).
		Post("/students/complete-lesson")
	return c.check(resp, err)
}

// CourseProgress fetches the completion snapshot for one course.
// GET /students/progress/{id}.
func (c *Client) CourseProgress(ctx context.Context, token string, courseID int) (Progress, error) {
	var out Progress
	resp, err := c.req(ctx, token).
		SetResult(&out).
		Get(fmt.Sprintf("/students/progress/%d", courseID))
	if err := c.check(resp, err); err != nil {
		return Progress{}, err
	}
	return out, nil
}

// Certificate downloads the PDF certificate for a completed course.
// GET /students/certificate/{id}. Returns the raw bytes and content type so
// the handler can stream them through unchanged.
func (c *Client) Certificate(ctx context.Context, token string, courseID int) ([]byte, string, error) {
	resp, err := c.req(ctx, token).
		Get(fmt.Sprintf("/students/certificate/%d", courseID))
	if err := c.check(resp, err); err != nil {
		return nil, "", err
	}
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return resp.Body(), contentType, nil
}
