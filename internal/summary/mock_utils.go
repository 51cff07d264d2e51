package summary

import (
	"context"
)

type MockClient struct {
	Response string
	Err      error
	Prompts  []string
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
