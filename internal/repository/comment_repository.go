package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogbase/internal/apperr"
	"blogbase/internal/models"
)

// Comments are embedded in the post document, so the comment operations live
// on PostRepository and are expressed as single post updates.

func (r *PostRepository) AddComment(ctx context.Context, postID bson.ObjectID, comment models.Comment) ([]models.Comment, error) {
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = time.Now().UTC()
	comment.UpdatedAt = comment.CreatedAt

	var post models.Post
	err := r.Col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, storeErr("add comment", err)
	}
	return post.Comments, nil
}

// DeleteComment removes the comment only when requester authored it. The
// ownership check is repeated inside the $pull filter so a concurrent edit
// cannot slip another author's comment into the removal.
func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID, requester bson.ObjectID) ([]models.Comment, error) {
	post, err := r.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	var found *models.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			found = &post.Comments[i]
			break
		}
	}
	if found == nil {
		return nil, apperr.New(apperr.NotFound, "comment not found")
	}
	if found.Author != requester {
		return nil, apperr.New(apperr.Forbidden, "only the comment author can delete it")
	}

	var updated models.Post
	err = r.Col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID, "author": requester}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, storeErr("delete comment", err)
	}
	return updated.Comments, nil
}

// ToggleLike flips membership of userID in the likes set with one pipeline
// update, so concurrent toggles cannot produce duplicates or lost updates.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID bson.ObjectID) (*models.Post, error) {
	likes := bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{userID, likes}}}},
			{Key: "then", Value: bson.D{{Key: "$setDifference", Value: bson.A{likes, bson.A{userID}}}}},
			{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{likes, bson.A{userID}}}}},
		}}}}}}},
	}

	var post models.Post
	err := r.Col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, storeErr("toggle like", err)
	}
	return &post, nil
}
