package dto

type GetPostsRequest struct {
	Limit    int  `form:"limit"`
	Offset   int  `form:"offset"`
	WithMii  bool `form:"with_mii"`
	AppData  bool `form:"app_data"`
	TopicTag bool `form:"topic_tag"`
}

type SearchPostsRequest struct {
	Query string `form:"q" binding:"required"`
}
