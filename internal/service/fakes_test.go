package service

import (
	"context"
	"io"
	"sync"

	"MarketLens/internal/model"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type engineCall struct {
	prompt    string
	maxTokens int
}

// recordingEngine 记录每次调用并返回固定回复
type recordingEngine struct {
	mu    sync.Mutex
	calls []engineCall
	reply string
	err   error
}

func (e *recordingEngine) Complete(_ context.Context, prompt string, maxTokens int) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, engineCall{prompt: prompt, maxTokens: maxTokens})
	return e.reply, e.err
}

func (e *recordingEngine) Name() string { return "recording" }

type fakeSource struct {
	events    []model.EventRecord
	byID      map[string]model.EventRecord
	err       error
	lastLimit int
}

func (f *fakeSource) Event(_ context.Context, id string) (*model.EventRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	ev, ok := f.byID[id]
	if !ok {
		return nil, io.EOF
	}
	return &ev, nil
}

func (f *fakeSource) ActiveEvents(_ context.Context, limit int) ([]model.EventRecord, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeRepo struct {
	saved    []model.EventRecord
	platform string
	err      error
}

func (r *fakeRepo) SaveSnapshots(_ context.Context, platform string, events []model.EventRecord) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.platform = platform
	r.saved = append(r.saved, events...)
	return len(events), nil
}

func (r *fakeRepo) ListSnapshots(_ context.Context, limit int) ([]model.EventRecord, error) {
	if limit > 0 && limit < len(r.saved) {
		return r.saved[:limit], nil
	}
	return r.saved, nil
}

func (r *fakeRepo) GetSnapshot(_ context.Context, _, id string) (*model.EventRecord, error) {
	for i := range r.saved {
		if r.saved[i].ID == id {
			return &r.saved[i], nil
		}
	}
	return nil, io.EOF
}
