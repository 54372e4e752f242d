package client

import (
	"context"
	"net/url"

	"taskboard/pkg/auth"
	"taskboard/pkg/task"
)

func taskPath(id task.ID) string {
	return "/tasks/" + url.PathEscape(string(id))
}

// ListTasks returns the full current task collection.
func (c *Client) ListTasks(ctx context.Context, tok auth.Token) ([]task.Task, error) {
	tasks := []task.Task{}
	if err := c.t.do(ctx, "GET", "/tasks", tok, nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// CreateTask creates a task from d.
func (c *Client) CreateTask(ctx context.Context, tok auth.Token, d task.Draft) (*task.Task, error) {
	var t task.Task
	if err := c.t.do(ctx, "POST", "/tasks", tok, d, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask replaces the editable fields of task id with d.
func (c *Client) UpdateTask(ctx context.Context, tok auth.Token, id task.ID, d task.Draft) (*task.Task, error) {
	var t task.Task
	if err := c.t.do(ctx, "PATCH", taskPath(id), tok, d, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes task id.
func (c *Client) DeleteTask(ctx context.Context, tok auth.Token, id task.ID) error {
	return c.t.do(ctx, "DELETE", taskPath(id), tok, nil, nil)
}

// CompleteTask marks task id completed.
func (c *Client) CompleteTask(ctx context.Context, tok auth.Token, id task.ID) error {
	return c.t.do(ctx, "PATCH", taskPath(id)+"/complete", tok, nil, nil)
}

// Session binds a client to one credential, for callers that take
// token-free methods.
type Session struct {
	c   *Client
	tok auth.Token
}

// Bind returns a Session that sends tok on every call.
func (c *Client) Bind(tok auth.Token) Session {
	return Session{c: c, tok: tok}
}

// CreateTask calls Client.CreateTask with the bound credential.
func (s Session) CreateTask(ctx context.Context, d task.Draft) (*task.Task, error) {
	return s.c.CreateTask(ctx, s.tok, d)
}

// UpdateTask calls Client.UpdateTask with the bound credential.
func (s Session) UpdateTask(ctx context.Context, id task.ID, d task.Draft) (*task.Task, error) {
	return s.c.UpdateTask(ctx, s.tok, id, d)
}
