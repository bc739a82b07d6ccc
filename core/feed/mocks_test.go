package feed

import (
	"context"
	"sync"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	"github.com/AllrounderTechBrief/TheStreamic/core/thumbnail"
)

// mockResolver is a mock implementation of the ImageResolver interface
type mockResolver struct {
	mu          sync.Mutex
	links       []string
	resolveFunc func(ctx context.Context, link string, hints domain.ImageHints) thumbnail.Result
}

func (m *mockResolver) Resolve(ctx context.Context, link string, hints domain.ImageHints) thumbnail.Result {
	m.mu.Lock()
	m.links = append(m.links, link)
	m.mu.Unlock()
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, link, hints)
	}
	return thumbnail.Result{}
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
