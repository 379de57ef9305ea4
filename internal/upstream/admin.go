package upstream

import (
	"context"
	"fmt"
)

// PlatformStats fetches the admin overview counters. GET /admin/stats.
func (c *Client) PlatformStats(ctx context.Context, token string) (Stats, error) {
	var out Stats
	resp, err := c.req(ctx, token).
		SetResult(&out).
		Get("/admin/stats")
	if err := c.check(resp, err); err != nil {
		return Stats{}, err
	}
	return out, nil
}

// PendingCourses lists courses awaiting review. GET /admin/review/courses.
func (c *Client) PendingCourses(ctx context.Context, token string) ([]Course, error) {
	var out []Course
	resp, err := c.req(ctx, token).
		SetResult(&out).
		Get("/admin/review/courses")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Course{}
	}
	return out, nil
}

// ApproveCourse approves a pending course. PUT /admin/approve/{id}.
func (c *Client) ApproveCourse(ctx context.Context, token string, courseID int) error {
	resp, err := c.req(ctx, token).
		Put(fmt.Sprintf("/admin/approve/%d", courseID))
	return c.check(resp, err)
}

// Users lists all platform accounts. GET /admin/users.
func (c *Client) Users(ctx context.Context, token string) ([]User, error) {
	var out []User
	resp, err := c.req(ctx, token).
		SetResult(&out).
		Get("/admin/users")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []User{}
	}
	return out, nil
}

// UpdateUserRole changes an account's role. PUT /admin/users/{id}.
func (c *Client) UpdateUserRole(ctx context.Context, token string, userID int, role string) error {
	resp, err := c.req(ctx, token).
		SetBody(map[string]string{"role": role}).
		Put(fmt.Sprintf("/admin/users/%d", userID))
	return c.check(resp, err)
}
