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

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// UpsertOnSignIn refreshes the identity fields on every sign-in without
// touching an existing role assignment. New documents start as plain users.
// When forceSuperAdmin is set, the role is corrected in the same write so a
// stale document can never downgrade the super admin.
func (r *UserRepository) UpsertOnSignIn(ctx context.Context, p domain.UserProfile, forceSuperAdmin bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"display_name": p.DisplayName,
		"photo_url":    p.PhotoURL,
		"last_seen":    p.LastSeen,
	}
	update := bson.M{"$set": set}
	if forceSuperAdmin {
		set["role"] = domain.RoleSuperAdmin
	} else {
		update["$setOnInsert"] = bson.M{"role": domain.RoleUser}
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": p.Email}, update, options.Update().SetUpsert(true))
	return err
}

// SetRole overwrites the stored role assignment.
func (r *UserRepository) SetRole(ctx context.Context, email string, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetProfileFields updates the self-service profile fields.
func (r *UserRepository) SetProfileFields(ctx context.Context, email, house, discordID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"house": house, "discord_id": discordID}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": email}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindByEmail retrieves a profile by its email key.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.UserProfile
	err := r.col.FindOne(ctx, bson.M{"_id": email}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes a profile document.
func (r *UserRepository) Delete(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List returns the full registry ordered by most recent sign-in.
func (r *UserRepository) List(ctx context.Context) ([]*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_seen", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.UserProfile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subscribe emits a full registry snapshot on every change, with the same
// change-stream-or-poll strategy as the submissions collection.
func (r *UserRepository) Subscribe(ctx context.Context) (<-chan []*domain.UserProfile, error) {
	initial, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan []*domain.UserProfile, 1)
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

// EnsureIndexes creates the registry indexes.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "last_seen", Value: -1}},
	})
	return err
}
