package redisrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("endpoint:prod", EndpointKey("prod"))
	assert.Equal("title:000500001018DD00-posts:30", TitlePostsKey("000500001018DD00", 30))
	assert.Equal("post:AYMHAAACAAADVHkZ", PostKey("AYMHAAACAAADVHkZ"))
	assert.Equal("community:2551084080", CommunityKey("2551084080"))
}
