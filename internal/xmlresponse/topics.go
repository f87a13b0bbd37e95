package xmlresponse

import (
	"context"
	"fmt"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/samber/lo"
)

// Topics renders the activity feed. Every community gets its recent posts
// from fetcher, keyed by its primary title id. One expire timestamp is shared
// by the whole document. The output is compact since clients poll it often.
func (g *Generator) Topics(ctx context.Context, communities []*model.Community, fetcher PostFetcher) (string, error) {
	opts := Options{
		WithMii:  true,
		AppData:  false,
		TopicTag: false,
		Topics:   true,
	}

	b := newResult()
	b.Elem("request_name", "topics").
		Elem("expire", g.expire()).
		Open("topics")

	for _, community := range communities {
		titleID := community.PrimaryTitleID()

		posts, err := fetcher.FetchRecentPosts(ctx, titleID, g.topicPostLimit)
		if err != nil {
			return "", fmt.Errorf("fetching recent posts for title %q: %w", titleID, err)
		}
		if len(posts) > g.topicPostLimit {
			posts = posts[:g.topicPostLimit]
		}

		b.Open("topic").
			Elem("empathy_count", community.EmpathyCount).
			Elem("has_shop_page", community.HasShopPage).
			Elem("icon", community.Icon).
			Open("title_ids")

		titleIDs := lo.Filter(community.TitleIDs, func(id string, _ int) bool {
			return id != ""
		})
		for _, id := range titleIDs {
			b.Elem("title_id", id)
		}

		b.Up().
			Elem("title_id", titleID).
			Elem("community_id", community.CommunityID).
			Elem("is_recommended", community.IsRecommended).
			Elem("name", community.Name).
			Open("people")

		for _, post := range posts {
			b.Open("person").Open("posts")
			g.renderPost(b, post, opts, community)
			b.Up().Up()
		}

		b.Up().Up()
	}

	return b.Up().String(false)
}
