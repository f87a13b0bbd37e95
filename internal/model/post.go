package model

import "time"

type Post struct {
	ID                         string    `json:"id"`
	PID                        uint32    `json:"pid"`
	CommunityID                string    `json:"community_id"`
	TitleID                    string    `json:"title_id"`
	ScreenName                 string    `json:"screen_name"`
	Body                       string    `json:"body"`
	AppData                    string    `json:"app_data"`
	Painting                   string    `json:"painting"`
	Screenshot                 string    `json:"screenshot"`
	ScreenshotLength           int       `json:"screenshot_length"`
	Mii                        string    `json:"mii"`
	MiiFaceURL                 string    `json:"mii_face_url"`
	TopicTag                   string    `json:"topic_tag"`
	FeelingID                  int       `json:"feeling_id"`
	CountryID                  int       `json:"country_id"`
	RegionID                   int       `json:"region_id"`
	PlatformID                 int       `json:"platform_id"`
	LanguageID                 int       `json:"language_id"`
	IsAutopost                 bool      `json:"is_autopost"`
	IsCommunityPrivateAutopost bool      `json:"is_community_private_autopost"`
	IsSpoiler                  bool      `json:"is_spoiler"`
	IsAppJumpable              bool      `json:"is_app_jumpable"`
	EmpathyCount               int       `json:"empathy_count"`
	ReplyCount                 int       `json:"reply_count"`
	ParentID                   *string   `json:"parent_id"`
	CreatedAt                  time.Time `json:"created_at"`
}
