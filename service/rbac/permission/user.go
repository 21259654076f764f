package permission

const (
	// GetMe 自ユーザー情報取得権限
	GetMe = Permission("get_me")
	// EditMe 自ユーザー情報編集権限
	EditMe = Permission("edit_me")
	// GetUser ユーザー情報取得権限
	GetUser = Permission("get_user")

	// GetArtistTag アーティストタグ取得権限
	GetArtistTag = Permission("get_artist_tag")
	// ManageArtistTags アーティストタグの作成・削除・付与権限
	ManageArtistTags = Permission("manage_artist_tags")
)
