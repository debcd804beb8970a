package export

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClipboard is a testify mock of Clipboard.
type MockClipboard struct {
	mock.Mock
}

func (m *MockClipboard) WriteText(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

// MockSaver is a testify mock of Saver.
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Save(ctx context.Context, name, content string) (string, error) {
	args := m.Called(ctx, name, content)
	return args.String(0), args.Error(1)
}
