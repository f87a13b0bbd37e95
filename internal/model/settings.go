package model

type Settings struct {
	PID        uint32 `json:"pid"`
	ScreenName string `json:"screen_name"`
}
