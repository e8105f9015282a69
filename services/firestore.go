package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"taskpro/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	boardsCollection   = "Boards"
	columnsCollection  = "Columns"
	cardsCollection    = "Cards"
	sessionsCollection = "usersLogin"
)

type FirestoreRealtime struct {
	client *firestore.Client
}

func NewFirestoreRealtime(client *firestore.Client) *FirestoreRealtime {
	return &FirestoreRealtime{client: client}
}

func (r *FirestoreRealtime) SyncBoard(ctx context.Context, board *model.Board) error {
	doc := r.client.Collection(boardsCollection).Doc(strconv.Itoa(int(board.BoardID)))
	_, err := doc.Set(ctx, map[string]interface{}{
		"BoardID":    board.BoardID,
		"Title":      board.Title,
		"Icon":       board.Icon,
		"Background": board.Background,
		"Owner":      board.UserID,
		"UpdatedAt":  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to sync board %d: %w", board.BoardID, err)
	}
	return nil
}

// RemoveBoard clears the board document plus every mirrored column and
// card underneath it. The dependents are found by querying the mirror
// itself, so stray documents from an earlier failed sync are cleaned up
// too. All deletes go through one batch.
func (r *FirestoreRealtime) RemoveBoard(ctx context.Context, boardID uint) error {
	batch := r.client.Batch()

	columnRefs, err := r.collectByParent(ctx, columnsCollection, "BoardID", boardID)
	if err != nil {
		return err
	}
	for _, ref := range columnRefs {
		columnID, err := strconv.Atoi(ref.ID)
		if err != nil {
			continue
		}
		cardRefs, err := r.collectByParent(ctx, cardsCollection, "ColumnID", uint(columnID))
		if err != nil {
			return err
		}
		for _, cardRef := range cardRefs {
			batch.Delete(cardRef)
		}
		batch.Delete(ref)
	}
	batch.Delete(r.client.Collection(boardsCollection).Doc(strconv.Itoa(int(boardID))))

	if _, err := batch.Commit(ctx); err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to remove board %d from mirror: %w", boardID, err)
	}
	return nil
}

func (r *FirestoreRealtime) SyncColumn(ctx context.Context, column *model.Column) error {
	doc := r.client.Collection(columnsCollection).Doc(strconv.Itoa(int(column.ColumnID)))
	_, err := doc.Set(ctx, map[string]interface{}{
		"ColumnID":  column.ColumnID,
		"Title":     column.Title,
		"BoardID":   column.BoardID,
		"UpdatedAt": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to sync column %d: %w", column.ColumnID, err)
	}
	return nil
}

func (r *FirestoreRealtime) RemoveColumn(ctx context.Context, columnID uint) error {
	batch := r.client.Batch()

	cardRefs, err := r.collectByParent(ctx, cardsCollection, "ColumnID", columnID)
	if err != nil {
		return err
	}
	for _, ref := range cardRefs {
		batch.Delete(ref)
	}
	batch.Delete(r.client.Collection(columnsCollection).Doc(strconv.Itoa(int(columnID))))

	if _, err := batch.Commit(ctx); err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to remove column %d from mirror: %w", columnID, err)
	}
	return nil
}

func (r *FirestoreRealtime) SyncCard(ctx context.Context, card *model.Card) error {
	doc := r.client.Collection(cardsCollection).Doc(strconv.Itoa(int(card.CardID)))
	_, err := doc.Set(ctx, map[string]interface{}{
		"CardID":      card.CardID,
		"Title":       card.Title,
		"Description": card.Description,
		"Priority":    card.Priority,
		"Deadline":    card.Deadline,
		"ColumnID":    card.ColumnID,
		"UpdatedAt":   time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to sync card %d: %w", card.CardID, err)
	}
	return nil
}

func (r *FirestoreRealtime) RemoveCard(ctx context.Context, cardID uint) error {
	doc := r.client.Collection(cardsCollection).Doc(strconv.Itoa(int(cardID)))
	if _, err := doc.Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to remove card %d from mirror: %w", cardID, err)
	}
	return nil
}

func (r *FirestoreRealtime) SyncSession(ctx context.Context, user *model.User, active bool) error {
	login := 0
	if active {
		login = 1
	}
	doc := r.client.Collection(sessionsCollection).Doc(user.Email)
	_, err := doc.Set(ctx, map[string]interface{}{
		"email":      user.Email,
		"login":      login,
		"updated_at": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to sync session for %s: %w", user.Email, err)
	}
	return nil
}

func (r *FirestoreRealtime) collectByParent(ctx context.Context, collection, field string, parentID uint) ([]*firestore.DocumentRef, error) {
	var refs []*firestore.DocumentRef
	iter := r.client.Collection(collection).Where(field, "==", parentID).Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query %s mirror: %w", collection, err)
		}
		refs = append(refs, snap.Ref)
	}
	return refs, nil
}
