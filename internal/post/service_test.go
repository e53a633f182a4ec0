package post

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	seq   int
	posts map[string]*Post
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: make(map[string]*Post)}
}

func (f *fakeRepo) Create(ctx context.Context, p *Post) error {
	f.seq++
	p.ID = fmt.Sprintf("post-%d", f.seq)
	stored := *p
	f.posts[p.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Post, int, error) {
	var out []*Post
	for _, p := range f.posts {
		if filter.PublishedOnly && !p.Published {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(ctx context.Context, p *Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return ErrNotFound
	}
	stored := *p
	f.posts[p.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func TestPostCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	t.Run("draft has no publish timestamp", func(t *testing.T) {
		p, err := svc.Create(ctx, CreateRequest{Title: "Opening Hours", Content: "We open at 9."})
		require.NoError(t, err)
		assert.False(t, p.Published)
		assert.Nil(t, p.PublishedAt)
	})

	t.Run("published post gets timestamp", func(t *testing.T) {
		p, err := svc.Create(ctx, CreateRequest{Title: "Grand Opening", Content: "Come visit.", Published: true})
		require.NoError(t, err)
		assert.True(t, p.Published)
		require.NotNil(t, p.PublishedAt)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Title: " ", Content: "body"})
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("blank content rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Title: "title", Content: ""})
		assert.ErrorIs(t, err, ErrContentRequired)
	})
}

func TestPostPublishToggle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	p, err := svc.Create(ctx, CreateRequest{Title: "Draft", Content: "wip"})
	require.NoError(t, err)

	published := true
	p, err = svc.Update(ctx, p.ID, UpdateRequest{Published: &published})
	require.NoError(t, err)
	assert.True(t, p.Published)
	require.NotNil(t, p.PublishedAt)

	unpublished := false
	p, err = svc.Update(ctx, p.ID, UpdateRequest{Published: &unpublished})
	require.NoError(t, err)
	assert.False(t, p.Published)
	assert.Nil(t, p.PublishedAt)
}

func TestPostListPublishedOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	_, err := svc.Create(ctx, CreateRequest{Title: "Draft", Content: "wip"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Title: "Live", Content: "news", Published: true})
	require.NoError(t, err)

	published, total, err := svc.List(ctx, Filter{PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, published, 1)
	assert.Equal(t, "Live", published[0].Title)

	all, total, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)
}
