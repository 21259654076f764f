package consts

const (
	ParamUserID    = "userID"
	ParamTagID     = "tagID"
	ParamColorID   = "colorID"
	ParamPaletteID = "paletteID"
	ParamTextureID = "textureID"
)
