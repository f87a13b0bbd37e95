package service

import (
	"context"
	"testing"

	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinglePost(t *testing.T) {
	f := newFixture()
	f.posts.posts["AYMHAAACAAADVHkZ"] = testPost("AYMHAAACAAADVHkZ")

	body, err := f.service.Post.SinglePost(context.Background(), "AYMHAAACAAADVHkZ")
	require.NoError(t, err)
	assert.Contains(t, body, "<body>hello world</body>")
	assert.Contains(t, body, "<mii></mii>")
	assert.Contains(t, f.cache.values, "post:AYMHAAACAAADVHkZ")

	delete(f.posts.posts, "AYMHAAACAAADVHkZ")
	cached, err := f.service.Post.SinglePost(context.Background(), "AYMHAAACAAADVHkZ")
	require.NoError(t, err)
	assert.Equal(t, body, cached)
}

func TestSinglePostNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.Post.SinglePost(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.service.Post.SinglePost(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSinglePostDatabaseError(t *testing.T) {
	f := newFixture()
	f.posts.err = errDatabaseDown

	_, err := f.service.Post.SinglePost(context.Background(), "AYMHAAACAAADVHkZ")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestReplies(t *testing.T) {
	f := newFixture()
	f.posts.posts["parent"] = testPost("parent")
	f.posts.replies["parent"] = []*model.Post{testPost("reply-1"), testPost("reply-2")}

	body, err := f.service.Post.Replies(context.Background(), "parent", dto.GetPostsRequest{WithMii: true})
	require.NoError(t, err)
	assert.Contains(t, body, "<request_name>replies</request_name>")
	assert.Contains(t, body, "<id>reply-1</id>")
	assert.Contains(t, body, "<id>reply-2</id>")
	assert.Contains(t, body, "<mii></mii>")

	_, err = f.service.Post.Replies(context.Background(), "missing", dto.GetPostsRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommunityPosts(t *testing.T) {
	f := newFixture()
	f.communities.communities = []*model.Community{{CommunityID: "2551084080", Name: "Mario"}}
	f.posts.posts["AYMHAAACAAADVHkZ"] = testPost("AYMHAAACAAADVHkZ")

	body, err := f.service.Post.CommunityPosts(context.Background(), "2551084080", dto.GetPostsRequest{})
	require.NoError(t, err)
	assert.Contains(t, body, "<request_name>posts</request_name>")
	assert.Contains(t, body, "<topic>")
	assert.Contains(t, body, "<id>AYMHAAACAAADVHkZ</id>")

	_, err = f.service.Post.CommunityPosts(context.Background(), "0", dto.GetPostsRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	f := newFixture()
	f.posts.posts["AYMHAAACAAADVHkZ"] = testPost("AYMHAAACAAADVHkZ")

	body, err := f.service.Post.Search(context.Background(), "AYMHAAACAAADVHkZ")
	require.NoError(t, err)
	assert.Contains(t, body, "<request_name>posts.search</request_name>")

	_, err = f.service.Post.Search(context.Background(), "nothing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPeople(t *testing.T) {
	f := newFixture()
	f.posts.posts["AYMHAAACAAADVHkZ"] = testPost("AYMHAAACAAADVHkZ")

	body, err := f.service.Post.People(context.Background(), dto.GetPostsRequest{})
	require.NoError(t, err)
	assert.Contains(t, body, "<expire>2024-03-11 22:15:30</expire>")
	assert.Contains(t, body, "<request_name>people</request_name>")
	assert.Contains(t, body, "<person>")
}

func TestEmpathy(t *testing.T) {
	f := newFixture()
	f.posts.posts["AYMHAAACAAADVHkZ"] = testPost("AYMHAAACAAADVHkZ")

	_, err := f.service.Post.SinglePost(context.Background(), "AYMHAAACAAADVHkZ")
	require.NoError(t, err)
	require.Contains(t, f.cache.values, "post:AYMHAAACAAADVHkZ")

	body, err := f.service.Post.Empathy(context.Background(), "AYMHAAACAAADVHkZ")
	require.NoError(t, err)
	assert.Contains(t, body, "<has_error>0</has_error>")
	assert.NotContains(t, body, "request_name")
	assert.Equal(t, 1, f.posts.empathies["AYMHAAACAAADVHkZ"])
	assert.NotContains(t, f.cache.values, "post:AYMHAAACAAADVHkZ")

	_, err = f.service.Post.Empathy(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchRecentPostsCaches(t *testing.T) {
	f := newFixture()
	f.posts.byTitle["000500001018DD00"] = []*model.Post{testPost("a"), testPost("b")}

	for i := 0; i < 2; i++ {
		posts, err := f.service.Post.FetchRecentPosts(context.Background(), "000500001018DD00", 30)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "b", posts[1].ID)
	}

	assert.Equal(t, 1, f.posts.titleQueries)
	assert.Contains(t, f.cache.values, "title:000500001018DD00-posts:30")
}

func TestFetchRecentPostsDatabaseError(t *testing.T) {
	f := newFixture()
	f.posts.err = errDatabaseDown

	_, err := f.service.Post.FetchRecentPosts(context.Background(), "000500001018DD00", 30)
	assert.ErrorIs(t, err, ErrInternal)
}
