package model

type Community struct {
	CommunityID   string   `json:"community_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	AppData       string   `json:"app_data"`
	TitleIDs      []string `json:"title_ids"`
	IsRecommended bool     `json:"is_recommended"`
	HasShopPage   bool     `json:"has_shop_page"`
	EmpathyCount  int      `json:"empathy_count"`
}

// PrimaryTitleID returns the canonical title id, or "" when none is set.
func (c *Community) PrimaryTitleID() string {
	if len(c.TitleIDs) == 0 {
		return ""
	}
	return c.TitleIDs[0]
}
