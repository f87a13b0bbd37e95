// Package xmlresponse renders posts, communities and people into the XML
// documents the console clients consume.
//
// Every document is rooted at <result> and starts with has_error and version.
// Field order inside each element is fixed; the clients match on position as
// much as on tag name, so the renderers never reorder or omit required fields.
package xmlresponse

import (
	"context"
	"time"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/xmltree"
)

// TimeFormat is used for created_at and expire fields.
const TimeFormat = "2006-01-02 15:04:05"

const (
	DefaultTopicPostLimit = 30
	expireAfter           = 24 * time.Hour
)

// PostFetcher loads the most recent posts for a title id. The topic feed
// calls it once per community.
type PostFetcher interface {
	FetchRecentPosts(ctx context.Context, titleID string, limit int) ([]*model.Post, error)
}

type Config struct {
	// CDNOrigin is the base URL for painting and screenshot links, without a trailing slash.
	CDNOrigin string
	// TopicPostLimit caps the posts shown per community in the topic feed.
	TopicPostLimit int
	// Now is the clock used for expire fields. Defaults to time.Now.
	Now func() time.Time
}

// Generator is safe for concurrent use; each call builds its own tree.
type Generator struct {
	cdnOrigin      string
	topicPostLimit int
	now            func() time.Time
}

func New(cfg Config) *Generator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TopicPostLimit <= 0 {
		cfg.TopicPostLimit = DefaultTopicPostLimit
	}

	return &Generator{
		cdnOrigin:      cfg.CDNOrigin,
		topicPostLimit: cfg.TopicPostLimit,
		now:            cfg.Now,
	}
}

func (g *Generator) expire() string {
	return g.now().Add(expireAfter).Format(TimeFormat)
}

func newResult() *xmltree.Builder {
	b := xmltree.New("result")
	b.Elem("has_error", 0).Elem("version", 1)
	return b
}
