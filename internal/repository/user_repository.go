package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blogbase/internal/apperr"
	"blogbase/internal/models"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

// isDup reports a Mongo duplicate-key error (code 11000), raised by the
// unique indexes from bootstrap.EnsureIndexes.
func isDup(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// storeErr maps driver failures: an unreachable or timed-out server is
// Unavailable (503), anything else stays Internal.
func storeErr(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return apperr.Wrap(apperr.Unavailable, "storage temporarily unavailable", err)
	}
	return apperr.Wrap(apperr.Internal, msg, err)
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.Col.InsertOne(ctx, user); err != nil {
		if isDup(err) {
			return apperr.New(apperr.Conflict, "email already registered")
		}
		return storeErr("insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, storeErr("find user by email", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, storeErr("find user by id", err)
	}
	return &user, nil
}

func (r *UserRepository) FindIDsByName(ctx context.Context, name string) ([]bson.ObjectID, error) {
	filter := bson.M{"name": bson.M{"$regex": regexQuote(name), "$options": "i"}}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr("find users by name", err)
	}
	defer cur.Close(ctx)

	var ids []bson.ObjectID
	for cur.Next(ctx) {
		var doc struct {
			ID bson.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr("decode user id", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("iterate users", err)
	}
	return ids, nil
}
