package historyRepo

import (
	"context"
	"time"

	"neobook/database"
	"neobook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyCollection = "conversation_history"

type mongoHistoryRepo struct {
	coll     *mongo.Collection
	maxTurns int
}

// NewMongoHistoryRepo returns a HistoryRepository backed by MongoDB that keeps
// at most maxTurns turns per session.
func NewMongoHistoryRepo(maxTurns int) HistoryRepository {
	return &mongoHistoryRepo{
		coll:     database.Collection(historyCollection),
		maxTurns: maxTurns,
	}
}

func (r *mongoHistoryRepo) Append(ctx context.Context, sessionID, role, content string, metadata map[string]string) error {
	turn := models.ConversationTurn{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Metadata:  metadata,
	}
	if _, err := r.coll.InsertOne(ctx, turn); err != nil {
		return err
	}
	return r.prune(ctx, sessionID)
}

// prune deletes the oldest turns beyond the retention limit. The cap is a
// retention policy, not a cache: pruned turns are gone for good.
func (r *mongoHistoryRepo) prune(ctx context.Context, sessionID string) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return err
	}
	excess := count - int64(r.maxTurns)
	if excess <= 0 {
		return nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(excess).
		SetProjection(bson.M{"_id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var oldest []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &oldest); err != nil {
		return err
	}
	ids := make([]string, len(oldest))
	for i, doc := range oldest {
		ids[i] = doc.ID
	}

	_, err = r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (r *mongoHistoryRepo) Recent(ctx context.Context, sessionID string, limit int) ([]models.ConversationTurn, error) {
	if limit <= 0 || limit > r.maxTurns {
		limit = r.maxTurns
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var turns []models.ConversationTurn
	if err := cursor.All(ctx, &turns); err != nil {
		return nil, err
	}

	// Query is newest-first; reverse into chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func (r *mongoHistoryRepo) Clear(ctx context.Context, sessionID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
