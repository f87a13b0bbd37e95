package xmlresponse

// Options selects which optional parts of a post are rendered. The zero value
// omits every optional group.
type Options struct {
	// WithMii adds mii and mii_face_url.
	WithMii bool
	// AppData adds the sanitized app_data blob when the post carries one.
	AppData bool
	// TopicTag adds the topic_tag group when the post carries a tag.
	TopicTag bool
	// Topics takes community_id from the enclosing community instead of the post.
	Topics bool
	// Name is the request_name of generic list documents.
	Name string
}
