package redisrepo

import "fmt"

const (
	ENDPOINT_KEY    = "endpoint:%s"       // <serverAccessLevel>
	TITLE_POSTS_KEY = "title:%s-posts:%d" // <titleID>:<limit>
	POST_KEY        = "post:%s"           // <postID>
	COMMUNITY_KEY   = "community:%s"      // <communityID>
)

func EndpointKey(accessLevel string) string {
	return fmt.Sprintf(ENDPOINT_KEY, accessLevel)
}

func TitlePostsKey(titleID string, limit int) string {
	return fmt.Sprintf(TITLE_POSTS_KEY, titleID, limit)
}

func PostKey(postID string) string {
	return fmt.Sprintf(POST_KEY, postID)
}

func CommunityKey(communityID string) string {
	return fmt.Sprintf(COMMUNITY_KEY, communityID)
}
