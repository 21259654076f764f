package router

// Config APIサーバー設定
type Config struct {
	// Development 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// Gzipped レスポンスをGzip圧縮するかどうか
	Gzipped bool
	// PickerMaxUploadKB 色抽出用画像の最大サイズ(KB)
	PickerMaxUploadKB int64
	// ChatRateLimit チャット投稿の1秒あたりの許容回数
	ChatRateLimit float64
	// ChatRateBurst チャット投稿の許容バースト数
	ChatRateBurst int
}
