package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

const collectionSubmissions = "healthDate"

// snapshotPollInterval drives the fallback refresh loop when the deployment
// does not support change streams (standalone mongod).
const snapshotPollInterval = 5 * time.Second

type SubmissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection(collectionSubmissions)}
}

// Create inserts a new leave submission document.
func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	return err
}

// FindByID retrieves a submission by its document id.
func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Submission
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpdateStatus writes the new status and the rejection reason in a single
// update. The reason is set only for rejections and removed on any other
// status, so a document can never carry a stale reason.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus, rejectionReason string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	if status == domain.StatusRejected {
		update["$set"].(bson.M)["rejection_reason"] = rejectionReason
	} else {
		update["$unset"] = bson.M{"rejection_reason": ""}
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// Delete removes a submission document regardless of its status.
func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// List returns every submission ordered by creation time, newest first.
func (r *SubmissionRepository) List(ctx context.Context) ([]*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Submission
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subscribe emits a full ordered snapshot of the collection on every change
// until ctx is cancelled. It prefers a change stream and falls back to
// periodic polling when the deployment does not support one.
func (r *SubmissionRepository) Subscribe(ctx context.Context) (<-chan []*domain.Submission, error) {
	initial, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan []*domain.Submission, 1)
	out <- initial

	stream, streamErr := r.col.Watch(ctx, mongo.Pipeline{})
	go func() {
		defer close(out)
		if streamErr == nil {
			defer stream.Close(context.Background())
			watchSnapshots(ctx, stream, out, r.List)
			return
		}
		pollSnapshots(ctx, out, r.List)
	}()
	return out, nil
}

// EnsureIndexes creates the indexes the visibility queries rely on.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// watchSnapshots re-lists the collection after every change stream event and
// pushes the fresh snapshot, dropping the stale one if the consumer is behind.
func watchSnapshots[T any](ctx context.Context, stream *mongo.ChangeStream, out chan []T, list func(context.Context) ([]T, error)) {
	for stream.Next(ctx) {
		snapshot, err := list(ctx)
		if err != nil {
			continue
		}
		push(ctx, out, snapshot)
	}
}

func pollSnapshots[T any](ctx context.Context, out chan []T, list func(context.Context) ([]T, error)) {
	ticker := time.NewTicker(snapshotPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot, err := list(ctx)
			if err != nil {
				continue
			}
			push(ctx, out, snapshot)
		}
	}
}

// push replaces a pending unread snapshot so the consumer always sees the
// latest state.
func push[T any](ctx context.Context, out chan []T, snapshot []T) {
	for {
		select {
		case <-ctx.Done():
			return
		case out <- snapshot:
			return
		default:
			select {
			case <-out:
			default:
			}
		}
	}
}
