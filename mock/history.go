package mock

import (
	"context"

	"github.com/fwojciec/urlinfo"
)

var _ urlinfo.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of urlinfo.HistoryService.
type HistoryService struct {
	CreateEntryFn   func(ctx context.Context, entry *urlinfo.HistoryEntry) error
	FindEntryByIDFn func(ctx context.Context, id string) (*urlinfo.HistoryEntry, error)
	FindEntriesFn   func(ctx context.Context, filter urlinfo.HistoryFilter) ([]*urlinfo.HistoryEntry, error)
}

func (s *HistoryService) CreateEntry(ctx context.Context, entry *urlinfo.HistoryEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *HistoryService) FindEntryByID(ctx context.Context, id string) (*urlinfo.HistoryEntry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *HistoryService) FindEntries(ctx context.Context, filter urlinfo.HistoryFilter) ([]*urlinfo.HistoryEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}
