package logger

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHookedLogger tạo logger ghi qua async hook vào buf, dùng cho test
func newHookedLogger(buf *bytes.Buffer, bufferSize int) (*logrus.Logger, *AsyncHook) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetOutput(io.Discard)

	hook := NewAsyncHookWithWriters([]io.Writer{buf}, bufferSize)
	log.AddHook(hook)
	return log, hook
}

func TestAsyncHookCloseFlushesBufferedEntries(t *testing.T) {
	var buf bytes.Buffer
	log, hook := newHookedLogger(&buf, 100)

	// Ghi nhiều entries liên tiếp rồi đóng hook ngay,
	// Close phải đợi toàn bộ buffer được ghi xong
	for i := 0; i < 20; i++ {
		log.Infof("entry so %d", i)
	}
	require.NoError(t, hook.Close())

	output := buf.String()
	for i := 0; i < 20; i++ {
		assert.Contains(t, output, fmt.Sprintf("entry so %d", i), "Entry %d phải được flush trước khi Close trả về", i)
	}
}

func TestAsyncHookCloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	_, hook := newHookedLogger(&buf, 10)

	require.NoError(t, hook.Close())
	// Gọi Close lần hai không được panic hay lỗi
	assert.NoError(t, hook.Close())
}

func TestAsyncHookFireAfterCloseWritesDirect(t *testing.T) {
	var buf bytes.Buffer
	log, hook := newHookedLogger(&buf, 10)
	require.NoError(t, hook.Close())

	// Sau khi đóng, Fire fallback ghi thẳng vào writer
	log.Info("sau khi dong")
	assert.Contains(t, buf.String(), "sau khi dong")
}
