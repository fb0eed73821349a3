package controllers_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogbase/internal/apperr"
	"blogbase/internal/models"
	"blogbase/internal/utils"
)

// In-memory stand-ins for the Mongo repositories, mirroring their error
// kinds so handlers behave identically under test.

type memUserStore struct {
	mu    sync.Mutex
	users map[bson.ObjectID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[bson.ObjectID]models.User{}}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperr.New(apperr.Conflict, "email already registered")
		}
	}
	now := time.Now().UTC()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (s *memUserStore) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (s *memUserStore) FindIDsByName(_ context.Context, name string) ([]bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(name)
	var ids []bson.ObjectID
	for id, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type memPostStore struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]models.Post
	seq   int
}

func newMemPostStore() *memPostStore {
	return &memPostStore{posts: map[bson.ObjectID]models.Post{}}
}

// nextTime hands out strictly increasing timestamps so newest-first ordering
// is deterministic.
func (s *memPostStore) nextTime() time.Time {
	s.seq++
	return time.Unix(1700000000, 0).UTC().Add(time.Duration(s.seq) * time.Second)
}

func (s *memPostStore) Create(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.Author == post.Author && p.Title == post.Title {
			return apperr.New(apperr.Conflict, "a post with this title already exists")
		}
	}
	now := s.nextTime()
	post.ID = bson.NewObjectID()
	post.Tags = utils.NormalizeTags(post.Tags)
	if post.Likes == nil {
		post.Likes = []bson.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	post.CreatedAt = now
	post.UpdatedAt = now
	s.posts[post.ID] = *post
	return nil
}

func (s *memPostStore) Get(_ context.Context, id bson.ObjectID) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		out := p
		return &out, nil
	}
	return nil, apperr.New(apperr.NotFound, "post not found")
}

func (s *memPostStore) Update(_ context.Context, id, author bson.ObjectID, patch models.PostPatch) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok || p.Author != author {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Tags != nil {
		p.Tags = utils.NormalizeTags(*patch.Tags)
	}
	p.UpdatedAt = s.nextTime()
	s.posts[id] = p
	out := p
	return &out, nil
}

func (s *memPostStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return apperr.New(apperr.NotFound, "post not found")
	}
	delete(s.posts, id)
	return nil
}

func (s *memPostStore) matches(p models.Post, f models.ListFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Content), needle) {
			return false
		}
	}
	if len(f.Tags) > 0 {
		any := false
		for _, want := range f.Tags {
			for _, got := range p.Tags {
				if want == got {
					any = true
				}
			}
		}
		if !any {
			return false
		}
	}
	if len(f.AuthorIDs) > 0 {
		any := false
		for _, id := range f.AuthorIDs {
			if id == p.Author {
				any = true
			}
		}
		if !any {
			return false
		}
	}
	if f.MinLikes > 0 && len(p.Likes) < f.MinLikes {
		return false
	}
	return true
}

func (s *memPostStore) List(_ context.Context, f models.ListFilter, page, limit int) ([]models.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.Post
	for _, p := range s.posts {
		if s.matches(p, f) {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := len(all)
	start := (page - 1) * limit
	if start >= total {
		return []models.Post{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (s *memPostStore) AddComment(_ context.Context, postID bson.ObjectID, comment models.Comment) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = s.nextTime()
	comment.UpdatedAt = comment.CreatedAt
	p.Comments = append(p.Comments, comment)
	s.posts[postID] = p
	return p.Comments, nil
}

func (s *memPostStore) DeleteComment(_ context.Context, postID, commentID, requester bson.ObjectID) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	idx := -1
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperr.New(apperr.NotFound, "comment not found")
	}
	if p.Comments[idx].Author != requester {
		return nil, apperr.New(apperr.Forbidden, "only the comment author can delete it")
	}
	p.Comments = append(p.Comments[:idx], p.Comments[idx+1:]...)
	s.posts[postID] = p
	return p.Comments, nil
}

func (s *memPostStore) ToggleLike(_ context.Context, postID, userID bson.ObjectID) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	idx := -1
	for i, id := range p.Likes {
		if id == userID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		p.Likes = append(p.Likes[:idx], p.Likes[idx+1:]...)
	} else {
		p.Likes = append(p.Likes, userID)
	}
	s.posts[postID] = p
	out := p
	return &out, nil
}

func (s *memPostStore) TrendingTags(_ context.Context, limit int) ([]models.TagCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int{}
	for _, p := range s.posts {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}
	var out []models.TagCount
	for tag, n := range counts {
		out = append(out, models.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
