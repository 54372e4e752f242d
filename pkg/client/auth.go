package client

import (
	"context"

	"taskboard/pkg/auth"
)

type tokenReply struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (auth.Token, error) {
	var reply tokenReply
	err := c.t.do(ctx, "POST", "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &reply)
	if err != nil {
		return "", err
	}
	return auth.Token(reply.Token), nil
}

// Signup registers an account. Servers that log the new user in return a
// token; otherwise the returned token is empty.
func (c *Client) Signup(ctx context.Context, username, email, password string) (auth.Token, error) {
	var reply tokenReply
	err := c.t.do(ctx, "POST", "/auth/signup", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &reply)
	if err != nil {
		return "", err
	}
	return auth.Token(reply.Token), nil
}
