package permission

const (
	// GetSavedColor 保存色取得権限
	GetSavedColor = Permission("get_saved_color")
	// SaveColor 色保存権限
	SaveColor = Permission("save_color")
	// DeleteSavedColor 保存色削除権限
	DeleteSavedColor = Permission("delete_saved_color")

	// GetPalette パレット取得権限
	GetPalette = Permission("get_palette")
	// CreatePalette パレット作成権限
	CreatePalette = Permission("create_palette")
	// EditPalette パレット編集権限
	EditPalette = Permission("edit_palette")
	// DeletePalette パレット削除権限
	DeletePalette = Permission("delete_palette")

	// UsePicker 画像からの色抽出権限
	UsePicker = Permission("use_picker")
)
