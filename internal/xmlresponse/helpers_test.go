package xmlresponse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/xmltree"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCDN = "https://cdn.example.com"

var fixedNow = time.Date(2024, time.March, 10, 22, 15, 30, 0, time.UTC)

func testGenerator() *Generator {
	return New(Config{
		CDNOrigin: testCDN,
		Now:       func() time.Time { return fixedNow },
	})
}

func testPost() *model.Post {
	return &model.Post{
		ID:            "AYMHAAACAAADVHkZ",
		PID:           1743126339,
		CommunityID:   "2551084080",
		TitleID:       "000500001018DD00",
		ScreenName:    "Jemma",
		Body:          "Hello Miiverse!",
		FeelingID:     1,
		CountryID:     49,
		RegionID:      2,
		PlatformID:    1,
		LanguageID:    1,
		IsAppJumpable: true,
		EmpathyCount:  4,
		ReplyCount:    2,
		CreatedAt:     time.Date(2023, time.November, 5, 9, 7, 3, 0, time.UTC),
	}
}

// parseResult checks the shared header and returns the <result> element.
func parseResult(t *testing.T, out string) *etree.Element {
	t.Helper()

	require.True(t, strings.HasPrefix(out, xmltree.Declaration), "missing xml declaration")

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))

	root := doc.Root()
	require.NotNil(t, root)
	require.Equal(t, "result", root.Tag)

	children := root.ChildElements()
	require.GreaterOrEqual(t, len(children), 2)
	assert.Equal(t, "has_error", children[0].Tag)
	assert.Equal(t, "version", children[1].Tag)
	assert.Equal(t, "1", children[1].Text())

	return root
}

func childTags(el *etree.Element) []string {
	var tags []string
	for _, c := range el.ChildElements() {
		tags = append(tags, c.Tag)
	}
	return tags
}

func childText(t *testing.T, el *etree.Element, tag string) string {
	t.Helper()

	c := el.SelectElement(tag)
	require.NotNil(t, c, "missing <%s>", tag)
	return c.Text()
}

type fakeFetcher struct {
	posts  map[string][]*model.Post
	err    error
	calls  []string
	limits []int
}

func (f *fakeFetcher) FetchRecentPosts(ctx context.Context, titleID string, limit int) ([]*model.Post, error) {
	f.calls = append(f.calls, titleID)
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	return f.posts[titleID], nil
}
