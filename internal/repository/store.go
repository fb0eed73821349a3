package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogbase/internal/models"
)

// UserStore and PostStore are the storage seams the handlers are wired
// against. The Mongo implementations live in this package; tests substitute
// in-memory fakes. Implementations report failures with apperr kinds so the
// error boundary can map them without inspecting driver types.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	// FindIDsByName resolves a case-insensitive name substring to user ids,
	// used by the authorName listing filter.
	FindIDsByName(ctx context.Context, name string) ([]bson.ObjectID, error)
}

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	Get(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	// Update applies the patch only when author still owns the post.
	Update(ctx context.Context, id, author bson.ObjectID, patch models.PostPatch) (*models.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	List(ctx context.Context, filter models.ListFilter, page, limit int) ([]models.Post, int, error)

	AddComment(ctx context.Context, postID bson.ObjectID, comment models.Comment) ([]models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID, requester bson.ObjectID) ([]models.Comment, error)

	// ToggleLike flips requester's membership in the likes set in one atomic
	// update and returns the post as written.
	ToggleLike(ctx context.Context, postID, userID bson.ObjectID) (*models.Post, error)

	TrendingTags(ctx context.Context, limit int) ([]models.TagCount, error)
}
