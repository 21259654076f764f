package repository

// Repository データリポジトリ
type Repository interface {
	// Sync DBのスキーマを最新に同期します
	//
	// 初回構築時はinitにtrueを返します。
	Sync() (init bool, err error)
	UserRepository
	SavedColorRepository
	ColorPaletteRepository
	ArtistTagRepository
	ChatMessageRepository
}
