package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/BloggingApp/miiverse-service/internal/config"
	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/repository"
	"github.com/BloggingApp/miiverse-service/internal/repository/postgres"
	"github.com/BloggingApp/miiverse-service/internal/repository/redisrepo"
	"github.com/BloggingApp/miiverse-service/internal/xmlresponse"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var errDatabaseDown = errors.New("database down")

type memoryCache struct {
	values map[string]string
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (m *memoryCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(valueJSON)
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	value, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (m *memoryCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.values, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type fakePosts struct {
	posts        map[string]*model.Post
	replies      map[string][]*model.Post
	byTitle      map[string][]*model.Post
	err          error
	titleQueries int
	empathies    map[string]int
}

func (f *fakePosts) FindByID(ctx context.Context, id string) (*model.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	post, ok := f.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return post, nil
}

func (f *fakePosts) FindReplies(ctx context.Context, parentID string, limit int, offset int) ([]*model.Post, error) {
	return f.replies[parentID], f.err
}

func (f *fakePosts) FindByCommunity(ctx context.Context, communityID string, limit int, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	for _, post := range f.posts {
		if post.CommunityID == communityID {
			posts = append(posts, post)
		}
	}
	return posts, f.err
}

func (f *fakePosts) FindRecentByTitleID(ctx context.Context, titleID string, limit int) ([]*model.Post, error) {
	f.titleQueries++
	return f.byTitle[titleID], f.err
}

func (f *fakePosts) FindRecent(ctx context.Context, limit int, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	for _, post := range f.posts {
		posts = append(posts, post)
	}
	return posts, f.err
}

func (f *fakePosts) Search(ctx context.Context, query string) (*model.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, post := range f.posts {
		if post.ID == query || post.Body == query {
			return post, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePosts) IncrEmpathy(ctx context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return pgx.ErrNoRows
	}
	if f.empathies == nil {
		f.empathies = map[string]int{}
	}
	f.empathies[id]++
	return nil
}

type fakeCommunities struct {
	communities []*model.Community
	err         error
}

func (f *fakeCommunities) FindByID(ctx context.Context, communityID string) (*model.Community, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, community := range f.communities {
		if community.CommunityID == communityID {
			return community, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCommunities) FindAll(ctx context.Context, limit int, offset int) ([]*model.Community, error) {
	return f.communities, f.err
}

func (f *fakeCommunities) FindPopular(ctx context.Context, limit int) ([]*model.Community, error) {
	return f.communities, f.err
}

type fakeSettings struct {
	following map[uint32][]*model.Settings
}

func (f *fakeSettings) FindFollowing(ctx context.Context, pid uint32) ([]*model.Settings, error) {
	return f.following[pid], nil
}

type fakeEndpoints struct {
	endpoints map[string]*model.Endpoint
	err       error
	queries   []string
}

func (f *fakeEndpoints) FindByAccessLevel(ctx context.Context, accessLevel string) (*model.Endpoint, error) {
	f.queries = append(f.queries, accessLevel)
	if f.err != nil {
		return nil, f.err
	}
	endpoint, ok := f.endpoints[accessLevel]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return endpoint, nil
}

type fakePNIDs struct {
	pnids map[uint32]*model.PNID
	err   error
}

func (f *fakePNIDs) FindByPID(ctx context.Context, pid uint32) (*model.PNID, error) {
	if f.err != nil {
		return nil, f.err
	}
	pnid, ok := f.pnids[pid]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return pnid, nil
}

type fixture struct {
	posts       *fakePosts
	communities *fakeCommunities
	settings    *fakeSettings
	endpoints   *fakeEndpoints
	pnids       *fakePNIDs
	cache       *memoryCache
	service     *Service
}

func newFixture() *fixture {
	f := &fixture{
		posts:       &fakePosts{posts: map[string]*model.Post{}, replies: map[string][]*model.Post{}, byTitle: map[string][]*model.Post{}},
		communities: &fakeCommunities{},
		settings:    &fakeSettings{following: map[uint32][]*model.Settings{}},
		endpoints:   &fakeEndpoints{endpoints: map[string]*model.Endpoint{}},
		pnids:       &fakePNIDs{pnids: map[uint32]*model.PNID{}},
		cache:       newMemoryCache(),
	}

	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Post:      f.posts,
			Community: f.communities,
			Settings:  f.settings,
			Endpoint:  f.endpoints,
			PNID:      f.pnids,
		},
		Redis: &redisrepo.RedisRepository{
			Default: f.cache,
		},
	}

	generator := xmlresponse.New(xmlresponse.Config{
		CDNOrigin: "https://cdn.example.com",
		Now:       func() time.Time { return time.Date(2024, time.March, 10, 22, 15, 30, 0, time.UTC) },
	})

	f.service = New(zap.NewNop(), repo, generator, config.CacheConfig{
		EndpointTTL: time.Minute,
		PostsTTL:    time.Minute,
	})

	return f
}

func testPost(id string) *model.Post {
	return &model.Post{
		ID:          id,
		PID:         1743126339,
		CommunityID: "2551084080",
		TitleID:     "000500001018DD00",
		ScreenName:  "Jemma",
		Body:        "hello <world>",
		CreatedAt:   time.Date(2023, time.November, 5, 9, 7, 3, 0, time.UTC),
	}
}
