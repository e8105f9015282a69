package services

import (
	"context"

	"taskpro/model"
)

// Realtime mirrors entity state into the document store that mobile and
// web clients subscribe to. The SQL row is always the source of truth;
// mirror writes are best-effort and their errors are logged by callers,
// never surfaced to the client.
type Realtime interface {
	SyncBoard(ctx context.Context, board *model.Board) error
	RemoveBoard(ctx context.Context, boardID uint) error
	SyncColumn(ctx context.Context, column *model.Column) error
	RemoveColumn(ctx context.Context, columnID uint) error
	SyncCard(ctx context.Context, card *model.Card) error
	RemoveCard(ctx context.Context, cardID uint) error
	SyncSession(ctx context.Context, user *model.User, active bool) error
}

// NoopRealtime satisfies Realtime without a backing store. Used in tests
// and when the service runs without Firestore credentials.
type NoopRealtime struct{}

func (NoopRealtime) SyncBoard(ctx context.Context, board *model.Board) error    { return nil }
func (NoopRealtime) RemoveBoard(ctx context.Context, boardID uint) error        { return nil }
func (NoopRealtime) SyncColumn(ctx context.Context, column *model.Column) error { return nil }
func (NoopRealtime) RemoveColumn(ctx context.Context, columnID uint) error      { return nil }
func (NoopRealtime) SyncCard(ctx context.Context, card *model.Card) error       { return nil }
func (NoopRealtime) RemoveCard(ctx context.Context, cardID uint) error          { return nil }
func (NoopRealtime) SyncSession(ctx context.Context, user *model.User, active bool) error {
	return nil
}
