package client

import (
	"context"
	"encoding/json"

	"taskboard/pkg/auth"
)

// Assist is the AI-assist service client.
type Assist struct {
	t transport
}

// NewAssist creates an Assist client for the service at baseURL.
func NewAssist(baseURL string, opts ...Option) *Assist {
	return &Assist{t: newTransport(baseURL, opts)}
}

// PredictCategory suggests a category for the given text.
func (a *Assist) PredictCategory(ctx context.Context, tok auth.Token, summary string) (string, error) {
	var reply struct {
		Category string `json:"category"`
	}
	if err := a.t.do(ctx, "POST", "/predict-category", tok, map[string]string{"summary": summary}, &reply); err != nil {
		return "", err
	}
	return reply.Category, nil
}

// GenerateDescription drafts a description for the given text.
func (a *Assist) GenerateDescription(ctx context.Context, tok auth.Token, summary string) (string, error) {
	var reply struct {
		Description string `json:"description"`
	}
	if err := a.t.do(ctx, "POST", "/generate-description", tok, map[string]string{"summary": summary}, &reply); err != nil {
		return "", err
	}
	return reply.Description, nil
}

// AdminReport returns the service's admin report document unparsed.
func (a *Assist) AdminReport(ctx context.Context, tok auth.Token) (json.RawMessage, error) {
	data, err := a.t.send(ctx, "GET", "/admin-report", tok, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// Suggester binds an Assist client to one credential.
type Suggester struct {
	a   *Assist
	tok auth.Token
}

// Bind returns a Suggester that sends tok on every call.
func (a *Assist) Bind(tok auth.Token) Suggester {
	return Suggester{a: a, tok: tok}
}

// PredictCategory calls Assist.PredictCategory with the bound credential.
func (s Suggester) PredictCategory(ctx context.Context, summary string) (string, error) {
	return s.a.PredictCategory(ctx, s.tok, summary)
}

// GenerateDescription calls Assist.GenerateDescription with the bound credential.
func (s Suggester) GenerateDescription(ctx context.Context, summary string) (string, error) {
	return s.a.GenerateDescription(ctx, s.tok, summary)
}
