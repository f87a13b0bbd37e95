package xmlresponse

import (
	"fmt"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/sanitize"
	"github.com/BloggingApp/miiverse-service/internal/xmltree"
)

const (
	noCountryID    = 254
	paintingFormat = "tga"
	postNumber     = "0"
)

// renderPost appends one <post> at the cursor and leaves the cursor where it was.
func (g *Generator) renderPost(b *xmltree.Builder, post *model.Post, opts Options, community *model.Community) {
	b.Open("post")

	if post.AppData != "" && opts.AppData {
		b.Elem("app_data", sanitize.Base64(post.AppData))
	}

	b.Elem("body", sanitize.Text(post.Body))

	if opts.Topics && community != nil {
		b.Elem("community_id", community.CommunityID)
	} else {
		b.Elem("community_id", post.CommunityID)
	}

	countryID := post.CountryID
	if countryID == 0 {
		countryID = noCountryID
	}

	b.Elem("country_id", countryID).
		Elem("created_at", post.CreatedAt.Format(TimeFormat)).
		Elem("feeling_id", post.FeelingID).
		Elem("id", post.ID).
		Elem("is_autopost", post.IsAutopost).
		Elem("is_community_private_autopost", post.IsCommunityPrivateAutopost).
		Elem("is_spoiler", post.IsSpoiler).
		Elem("is_app_jumpable", post.IsAppJumpable).
		Elem("empathy_count", post.EmpathyCount).
		Elem("language_id", post.LanguageID)

	if opts.WithMii {
		b.Elem("mii", sanitize.Base64(post.Mii)).
			Elem("mii_face_url", post.MiiFaceURL)
	}

	b.Elem("number", postNumber)

	if post.Painting != "" {
		b.Open("painting").
			Elem("format", paintingFormat).
			Elem("content", sanitize.Painting(post.Painting)).
			Elem("size", len(post.Painting)).
			Elem("url", g.PaintingURL(post)).
			Up()
	}

	b.Elem("pid", post.PID).
		Elem("platform_id", post.PlatformID).
		Elem("region_id", post.RegionID).
		Elem("reply_count", post.ReplyCount).
		Elem("screen_name", post.ScreenName)

	if post.Screenshot != "" && post.ScreenshotLength > 0 {
		b.Open("screenshot").
			Elem("size", post.ScreenshotLength).
			Elem("url", g.ScreenshotURL(post)).
			Up()
	}

	if post.TopicTag != "" && opts.TopicTag {
		b.Open("topic_tag").
			Elem("name", post.TopicTag).
			Elem("title_id", post.TitleID).
			Up()
	}

	b.Elem("title_id", post.TitleID)

	b.Up()
}

func (g *Generator) PaintingURL(post *model.Post) string {
	return fmt.Sprintf("%s/paintings/%d/%s.png", g.cdnOrigin, post.PID, post.ID)
}

func (g *Generator) ScreenshotURL(post *model.Post) string {
	return fmt.Sprintf("%s/screenshots/%d/%s.jpg", g.cdnOrigin, post.PID, post.ID)
}
