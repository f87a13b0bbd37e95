package xmlresponse

import (
	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/xmltree"
)

// Replies lists replies to a post.
func (g *Generator) Replies(posts []*model.Post, opts Options) (string, error) {
	b := newResult()
	b.Elem("request_name", "replies").Open("posts")

	for _, post := range posts {
		g.renderPost(b, post, opts, nil)
	}

	return b.Up().String(true)
}

// Posts lists posts of one community under a topic header.
func (g *Generator) Posts(posts []*model.Post, community *model.Community, opts Options) (string, error) {
	b := newResult()
	b.Elem("request_name", opts.Name).
		Open("topic").
		Elem("community_id", community.CommunityID).
		Up().
		Open("posts")

	for _, post := range posts {
		g.renderPost(b, post, opts, nil)
	}

	return b.Up().String(true)
}

// Empty acknowledges a request that has nothing to return.
func (g *Generator) Empty() (string, error) {
	return newResult().String(true)
}

func (g *Generator) Communities(communities []*model.Community) (string, error) {
	b := newResult()
	b.Elem("request_name", "communities").Open("communities")

	for _, community := range communities {
		renderCommunity(b, community)
	}

	return b.Up().String(true)
}

func (g *Generator) Community(community *model.Community) (string, error) {
	b := newResult()
	b.Elem("request_name", "community")
	renderCommunity(b, community)

	return b.String(true)
}

// renderCommunity never knows about user communities or icons; icon, icon_3ds
// and pid stay empty and is_user_community is always 0.
func renderCommunity(b *xmltree.Builder, community *model.Community) {
	b.Open("community").
		Elem("community_id", community.CommunityID).
		Elem("name", community.Name).
		Elem("description", community.Description).
		Elem("icon", nil).
		Elem("icon_3ds", nil).
		Elem("pid", nil).
		Elem("app_data", community.AppData).
		Elem("is_user_community", 0).
		Up()
}

func (g *Generator) SinglePost(post *model.Post) (string, error) {
	b := newResult()
	b.Open("post")
	g.renderPost(b, post, Options{WithMii: true}, nil)

	return b.Up().String(true)
}

// Query answers a post search with a single match.
func (g *Generator) Query(post *model.Post) (string, error) {
	b := newResult()
	b.Elem("request_name", "posts.search").Open("posts")
	g.renderPost(b, post, Options{WithMii: true}, nil)

	return b.Up().String(true)
}

// Following lists people by pid and screen name only.
func (g *Generator) Following(people []*model.Settings) (string, error) {
	b := newResult()
	b.Elem("request_name", "user_infos").Open("people")

	for _, person := range people {
		b.Open("person").
			Elem("pid", person.PID).
			Elem("screen_name", person.ScreenName).
			Up()
	}

	return b.Up().String(true)
}

// People wraps every post in its own person element.
func (g *Generator) People(posts []*model.Post, opts Options) (string, error) {
	b := newResult()
	b.Elem("expire", g.expire()).
		Elem("request_name", opts.Name).
		Open("people")

	for _, post := range posts {
		b.Open("person").Open("posts")
		g.renderPost(b, post, opts, nil)
		b.Up().Up()
	}

	return b.Up().String(true)
}

// Error is the in-body error document. It is served with a non-2xx status.
func Error(code int, errorCode int, message string) (string, error) {
	b := xmltree.New("result")
	b.Elem("has_error", 1).
		Elem("version", 1).
		Elem("code", code).
		Elem("error_code", errorCode).
		Elem("message", message)

	return b.String(true)
}
