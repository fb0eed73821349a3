package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogbase/config"
	"blogbase/dto"
	"blogbase/internal/apperr"
	"blogbase/internal/middleware"
	"blogbase/internal/models"
	"blogbase/internal/repository"
	"blogbase/internal/services"
	"blogbase/internal/utils"
)

type PostHandler struct {
	Posts repository.PostStore
	Users repository.UserStore
}

func parsePostID(c *fiber.Ctx) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return bson.NilObjectID, apperr.New(apperr.Validation, "invalid post id")
	}
	return id, nil
}

// author resolves a post author to public fields, tolerating a since-deleted
// account.
func (h *PostHandler) author(c *fiber.Ctx, id bson.ObjectID) models.PublicUser {
	user, err := h.Users.FindByID(c.Context(), id)
	if err != nil {
		return models.PublicUser{ID: id}
	}
	return user.Public()
}

// Create godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePostReq  true  "Post payload"
// @Success      201   {object}  dto.PostResp
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	var req dto.CreatePostReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.Validation, "invalid body")
	}
	if err := services.ValidateCreatePost(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
		Tags:    req.Tags,
		Author:  uid,
	}
	if err := h.Posts.Create(c.Context(), post); err != nil {
		return err
	}

	resp := services.PostResponse(post, h.author(c, uid))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get godoc
// @Summary      Fetch one post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.PostResp
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.Posts.Get(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(services.PostResponse(post, h.author(c, post.Author)))
}

// Update godoc
// @Summary      Update a post (author only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post ID (hex)"
// @Param        body  body      dto.UpdatePostReq  true  "Patch: title, content, tags, image"
// @Success      200   {object}  dto.PostResp
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/{id} [patch]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	patch, err := services.ParsePostPatch(c.Body())
	if err != nil {
		return err
	}

	post, err := h.Posts.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !services.IsOwner(post.Author, uid) {
		return apperr.New(apperr.Forbidden, "only the author can update this post")
	}

	updated, err := h.Posts.Update(c.Context(), id, uid, patch)
	if err != nil {
		return err
	}
	return c.JSON(services.PostResponse(updated, h.author(c, updated.Author)))
}

// Delete godoc
// @Summary      Delete a post (author only)
// @Tags         posts
// @Produce      json
// @Param        id   path  string  true  "Post ID (hex)"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.Posts.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if !services.IsOwner(post.Author, uid) {
		return apperr.New(apperr.Forbidden, "only the author can delete this post")
	}

	if err := h.Posts.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Paginated, filtered post listing
// @Tags         posts
// @Produce      json
// @Param        page        query  int     false  "Page (1-based)"
// @Param        limit       query  int     false  "Page size, clamped to 20"
// @Param        search      query  string  false  "Substring match over title and content"
// @Param        tags        query  string  false  "Comma-separated; matches posts having any"
// @Param        minlikes    query  int     false  "Minimum like count"
// @Param        authorName  query  string  false  "Author name substring"
// @Param        authorID    query  string  false  "Author id (hex)"
// @Success      200  {object}  dto.ListPostsResp
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	page := repository.NormalizePage(c.QueryInt("page", 1))
	limit := repository.ClampLimit(c.QueryInt("limit", 0), config.DefaultLimitPosts, config.MaxLimitPosts)

	filter := models.ListFilter{
		Search:   c.Query("search"),
		Tags:     utils.SplitTagsParam(c.Query("tags")),
		MinLikes: c.QueryInt("minlikes", 0),
	}

	if raw := c.Query("authorID"); raw != "" {
		oid, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return apperr.New(apperr.Validation, "invalid authorID")
		}
		filter.AuthorIDs = append(filter.AuthorIDs, oid)
	}

	if name := c.Query("authorName"); name != "" {
		ids, err := h.Users.FindIDsByName(c.Context(), name)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			// No author matches, so no post can match either.
			return c.JSON(dto.ListPostsResp{Posts: []dto.PostResp{}, Page: page, Limit: limit})
		}
		filter.AuthorIDs = append(filter.AuthorIDs, ids...)
	}

	posts, total, err := h.Posts.List(c.Context(), filter, page, limit)
	if err != nil {
		return err
	}

	authors := map[bson.ObjectID]models.PublicUser{}
	out := make([]dto.PostResp, 0, len(posts))
	for i := range posts {
		author, ok := authors[posts[i].Author]
		if !ok {
			author = h.author(c, posts[i].Author)
			authors[posts[i].Author] = author
		}
		out = append(out, services.PostResponse(&posts[i], author))
	}

	return c.JSON(dto.ListPostsResp{
		Posts:      out,
		Page:       page,
		Limit:      limit,
		TotalPosts: total,
		TotalPages: repository.TotalPages(total, limit),
	})
}
