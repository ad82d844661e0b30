package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChatLoop(t *testing.T) {
	var sent []string
	send := func(_ context.Context, message string) (string, error) {
		sent = append(sent, message)
		if message == "boom" {
			return "", errors.New("model unavailable")
		}
		return "ok: " + message, nil
	}

	in := strings.NewReader("hello\n\n  boom  \nexit\nignored\n")
	var out bytes.Buffer
	require.NoError(t, chatLoop(context.Background(), in, &out, send, zap.NewNop()))

	assert.Equal(t, []string{"hello", "boom"}, sent)
	assert.Contains(t, out.String(), "Agent: ok: hello")
	assert.Contains(t, out.String(), "Agent: I encountered an error: model unavailable")
	assert.True(t, strings.HasSuffix(out.String(), "Goodbye!\n"))
}

func TestChatLoop_LongMessage(t *testing.T) {
	long := strings.Repeat("a", 1024*1024)
	var got string
	send := func(_ context.Context, message string) (string, error) {
		got = message
		return "done", nil
	}

	in := strings.NewReader(long + "\nquit\n")
	var out bytes.Buffer
	require.NoError(t, chatLoop(context.Background(), in, &out, send, zap.NewNop()))

	assert.Len(t, got, len(long))
	assert.Contains(t, out.String(), "Agent: done")
}
