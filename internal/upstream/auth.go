package upstream

import "context"

// RegisterRequest creates a new account. The role is chosen at signup and is
// limited to student or creator; admins are provisioned out of band.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates an account. POST /users/register, JSON body, no auth.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.req(ctx, "").
		SetBody(req).
		Post("/users/register")
	return c.check(resp, err)
}

// Login exchanges credentials for a bearer token. POST /login/ is
// form-encoded with the email under "username", OAuth2 password-flow style.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	var out TokenResponse
	resp, err := c.req(ctx, "").
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(&out).
		Post("/login/")
	if err := c.check(resp, err); err != nil {
		return TokenResponse{}, err
	}
	return out, nil
}
