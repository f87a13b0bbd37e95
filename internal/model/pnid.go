package model

type PNID struct {
	PID               uint32 `json:"pid"`
	Username          string `json:"username"`
	ServerAccessLevel string `json:"server_access_level"`
}
