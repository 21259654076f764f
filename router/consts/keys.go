package consts

const (
	KeyUserID         = "userID"
	KeyUser           = "user"
	KeyParamUser      = "paramUser"
	KeyParamArtistTag = "paramArtistTag"
)
