package bootstrap_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"biztime/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestStartHTTPServer_GracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	audit := &recordingAudit{}
	closed := false

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.StartHTTPServer(ctx,
			http.NotFoundHandler(),
			bootstrap.ServerConfig{Port: "0", ShutdownTimeout: time.Second},
			audit,
			closerFunc(func() error { closed = true; return nil }),
		)
	}()

	require.Eventually(t, func() bool { return len(audit.actions()) == 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, []string{"SERVER_START", "SERVER_SHUTDOWN"}, audit.actions())
	assert.True(t, closed)
}

func TestStartHTTPServer_ListenError(t *testing.T) {
	err := bootstrap.StartHTTPServer(context.Background(), http.NotFoundHandler(),
		bootstrap.ServerConfig{Port: "not-a-port"}, &recordingAudit{})
	assert.Error(t, err)
}

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := bootstrap.NewStdoutAuditLogger(zap.New(core))

	l.Log(context.Background(), bootstrap.AuditLog{Action: "SERVER_START", Message: "up"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	assert.Equal(t, "SERVER_START", entry.ContextMap()["action"])
}
