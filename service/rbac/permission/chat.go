package permission

const (
	// GetChatMessage チャットメッセージ取得権限
	GetChatMessage = Permission("get_chat_message")
	// PostChatMessage チャットメッセージ投稿権限
	PostChatMessage = Permission("post_chat_message")
)
