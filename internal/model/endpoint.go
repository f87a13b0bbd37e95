package model

const (
	AccessLevelProd = "prod"
	AccessLevelTest = "test"
	AccessLevelDev  = "dev"
)

type Endpoint struct {
	ServerAccessLevel string `json:"server_access_level"`
	Status            int    `json:"status"`
	Host              string `json:"host"`
	APIHost           string `json:"api_host"`
	PortalHost        string `json:"portal_host"`
	N3DSHost          string `json:"n3ds_host"`
}
