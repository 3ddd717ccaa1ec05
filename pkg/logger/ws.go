package logger

import (
	"os"
	"sync/atomic"
)

// ReopenableWriteSyncer is a zap WriteSyncer backed by a file that can be
// closed and reopened at runtime, so logrotate can move the file away and
// signal the process to start a fresh one without dropping writes.
type ReopenableWriteSyncer struct {
	path string
	cur  atomic.Pointer[os.File]
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{path: path}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Reload opens the configured path again and swaps it in, closing the
// previous file. Safe to call concurrently with Write.
func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.ModePerm)
	if err != nil {
		return err
	}
	old := ws.cur.Swap(file)
	if old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	return ws.cur.Load().Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.cur.Load().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.cur.Load().Close()
}
