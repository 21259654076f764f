package event

const (
	// UserCreated ユーザーが作成された
	// 	Fields:
	// 		user: *model.User
	UserCreated = "user.created"
	// UserUpdated ユーザーが更新された
	// 	Fields:
	// 		user_id: int
	UserUpdated = "user.updated"
	// UserTagAdded ユーザーにタグが付与された
	// 	Fields:
	// 		user_id: int
	// 		tag_id: int
	UserTagAdded = "user_tag.added"
	// UserTagRemoved ユーザーからタグが外された
	// 	Fields:
	// 		user_id: int
	// 		tag_id: int
	UserTagRemoved = "user_tag.removed"
	// ArtistTagCreated アーティストタグが作成された
	// 	Fields:
	// 		tag: *model.ArtistTag
	ArtistTagCreated = "artist_tag.created"
	// ArtistTagDeleted アーティストタグが削除された
	// 	Fields:
	// 		tag_id: int
	// 		removed_assignments: int64
	ArtistTagDeleted = "artist_tag.deleted"
	// ColorSaved 色が保存された
	// 	Fields:
	// 		user_id: int
	// 		color: *model.SavedColor
	ColorSaved = "color.saved"
	// ColorDeleted 保存色が削除された
	// 	Fields:
	// 		color_id: int
	ColorDeleted = "color.deleted"
	// PaletteCreated パレットが作成された
	// 	Fields:
	// 		user_id: int
	// 		palette: *model.ColorPalette
	PaletteCreated = "palette.created"
	// PaletteUpdated パレットが更新された
	// 	Fields:
	// 		palette_id: int
	PaletteUpdated = "palette.updated"
	// PaletteDeleted パレットが削除された
	// 	Fields:
	// 		palette_id: int
	PaletteDeleted = "palette.deleted"
	// ChatMessageCreated チャットメッセージが投稿された
	// 	Fields:
	// 		message: *model.ChatMessage
	ChatMessageCreated = "chat_message.created"
)
