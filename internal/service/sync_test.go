package service

import (
	"context"
	"errors"
	"testing"

	"MarketLens/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync(t *testing.T) {
	src := &fakeSource{events: []model.EventRecord{fedEvent(), {ID: "200", Title: "Other"}}}
	repo := &fakeRepo{}
	s := NewSyncService(src, repo, nil, testLogger())

	n, err := s.Sync(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, model.PlatformPolymarket, repo.platform)
	assert.Equal(t, 50, src.lastLimit)

	list, err := s.Snapshots(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "100", list[0].ID)
}

func TestSync_Errors(t *testing.T) {
	s := NewSyncService(&fakeSource{}, nil, nil, testLogger())
	_, err := s.Sync(context.Background(), 10)
	assert.ErrorIs(t, err, ErrStoreDisabled)
	_, err = s.Snapshots(context.Background(), 10)
	assert.ErrorIs(t, err, ErrStoreDisabled)

	s = NewSyncService(&fakeSource{err: errors.New("timeout")}, &fakeRepo{}, nil, testLogger())
	_, err = s.Sync(context.Background(), 10)
	assert.ErrorIs(t, err, ErrUpstream)

	s = NewSyncService(&fakeSource{events: []model.EventRecord{fedEvent()}}, &fakeRepo{err: errors.New("db down")}, nil, testLogger())
	_, err = s.Sync(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")

	repo := &fakeRepo{}
	s = NewSyncService(&fakeSource{events: []model.EventRecord{}}, repo, nil, testLogger())
	n, err := s.Sync(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, repo.saved)
}
