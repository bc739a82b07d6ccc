package pipeline

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/AllrounderTechBrief/TheStreamic/core/domain"
	"github.com/AllrounderTechBrief/TheStreamic/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: 200}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       []byte
	headers    map[string]string
	closed     bool
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &closeTracker{Reader: bytes.NewReader(m.body), resp: m}
}

func (m *mockResponse) Header(key string) string {
	return m.headers[key]
}

type closeTracker struct {
	io.Reader
	resp *mockResponse
}

func (c *closeTracker) Close() error {
	c.resp.closed = true
	return nil
}

// mockParser is a mock implementation of the FeedParser interface
type mockParser struct {
	parseFunc func(ctx context.Context, source string, data []byte, limit int) []domain.FeedItem
}

func (m *mockParser) Parse(ctx context.Context, source string, data []byte, limit int) []domain.FeedItem {
	if m.parseFunc != nil {
		return m.parseFunc(ctx, source, data, limit)
	}
	return []domain.FeedItem{}
}

// mockWriter is a mock implementation of the OutputWriter interface
type mockWriter struct {
	mu        sync.Mutex
	written   map[string][]domain.FeedItem
	order     []string
	writeFunc func(ctx context.Context, category domain.Category, items []domain.FeedItem) (string, error)
}

func newMockWriter() *mockWriter {
	return &mockWriter{written: make(map[string][]domain.FeedItem)}
}

func (m *mockWriter) Write(ctx context.Context, category domain.Category, items []domain.FeedItem) (string, error) {
	m.mu.Lock()
	m.order = append(m.order, category.Name)
	m.mu.Unlock()

	if m.writeFunc != nil {
		return m.writeFunc(ctx, category, items)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.written[category.Name] = items
	return "mem/" + category.OutputFile(), nil
}

// mockLimiter is a mock implementation of the HostLimiter interface
type mockLimiter struct {
	mu       sync.Mutex
	urls     []string
	waitFunc func(ctx context.Context, rawURL string) error
}

func (m *mockLimiter) Wait(ctx context.Context, rawURL string) error {
	m.mu.Lock()
	m.urls = append(m.urls, rawURL)
	m.mu.Unlock()
	if m.waitFunc != nil {
		return m.waitFunc(ctx, rawURL)
	}
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	messages []string
	fields   map[string]map[string]interface{}
}

func (m *mockLogger) record(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	if m.fields == nil {
		m.fields = make(map[string]map[string]interface{})
	}
	m.fields[msg] = fields
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg, fields) }
