package cmd

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router"
	"github.com/traPtitech/atelier/service/chat"
	"github.com/traPtitech/atelier/service/picker"
	"github.com/traPtitech/atelier/service/texture"
	"github.com/traPtitech/atelier/service/user"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`

	// Origin サーバーオリジン (default: http://localhost:3000)
	Origin string `mapstructure:"origin" yaml:"origin"`
	// Port サーバーポート番号 (default: 3000)
	Port int `mapstructure:"port" yaml:"port"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`
	// ShutdownTimeout シャットダウン待機時間(秒) (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
	// OwnerOpenID 管理者として扱う外部ID (default: "")
	OwnerOpenID string `mapstructure:"ownerOpenId" yaml:"ownerOpenId"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// Database データベース設定
	Database struct {
		// Driver ドライバー (default: mysql)
		// 	mysql: MariaDB / MySQL
		// 	sqlite: SQLite
		Driver string `mapstructure:"driver" yaml:"driver"`
	} `mapstructure:"database" yaml:"database"`

	// MariaDB データベース接続設定
	MariaDB struct {
		// Host ホスト名 (default: 127.0.0.1)
		Host string `mapstructure:"host" yaml:"host"`
		// Port ポート番号 (default: 3306)
		Port int `mapstructure:"port" yaml:"port"`
		// Username ユーザー名 (default: root)
		Username string `mapstructure:"username" yaml:"username"`
		// Password パスワード (default: password)
		Password string `mapstructure:"password" yaml:"password"`
		// Database データベース名 (default: atelier)
		Database string `mapstructure:"database" yaml:"database"`
		// Connection コネクション設定
		Connection struct {
			// MaxOpen 最大オープン接続数. 0は無制限 (default: 0)
			MaxOpen int `mapstructure:"maxOpen" yaml:"maxOpen"`
			// MaxIdle 最大アイドル接続数 (default: 2)
			MaxIdle int `mapstructure:"maxIdle" yaml:"maxIdle"`
			// LifeTime 待機接続維持時間. 0は無制限 (default: 0)
			LifeTime int `mapstructure:"lifetime" yaml:"lifetime"`
		} `mapstructure:"connection" yaml:"connection"`
	} `mapstructure:"mariadb" yaml:"mariadb"`

	// SQLite SQLite設定
	SQLite struct {
		// Path データベースファイルのパス (default: ./atelier.db)
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"sqlite" yaml:"sqlite"`

	// Picker 色抽出設定
	Picker struct {
		// MaxPixels 処理可能な最大画素数 (default: 4096*4096)
		MaxPixels int `mapstructure:"maxPixels" yaml:"maxPixels"`
		// Concurrency 処理並列数 (default: 2)
		Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
		// MaxUploadKB アップロード可能な画像の最大サイズ(KB) (default: 10240)
		MaxUploadKB int64 `mapstructure:"maxUploadKB" yaml:"maxUploadKB"`
	} `mapstructure:"picker" yaml:"picker"`

	// Chat チャット設定
	Chat struct {
		// MaxContentLength メッセージ本文の最大文字数 (default: 2000)
		MaxContentLength int `mapstructure:"maxContentLength" yaml:"maxContentLength"`
		// RateLimit ユーザーごとの1秒あたりの投稿許容回数. 0以下は無制限 (default: 1)
		RateLimit float64 `mapstructure:"rateLimit" yaml:"rateLimit"`
		// RateBurst 投稿の許容バースト数 (default: 5)
		RateBurst int `mapstructure:"rateBurst" yaml:"rateBurst"`
	} `mapstructure:"chat" yaml:"chat"`
}

// Configのデフォルト値設定
func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("origin", "http://localhost:3000")
	viper.SetDefault("port", 3000)
	viper.SetDefault("gzip", true)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("ownerOpenId", "")
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("mariadb.host", "127.0.0.1")
	viper.SetDefault("mariadb.port", 3306)
	viper.SetDefault("mariadb.username", "root")
	viper.SetDefault("mariadb.password", "password")
	viper.SetDefault("mariadb.database", "atelier")
	viper.SetDefault("mariadb.connection.maxOpen", 0)
	viper.SetDefault("mariadb.connection.maxIdle", 2)
	viper.SetDefault("mariadb.connection.lifetime", 0)
	viper.SetDefault("sqlite.path", "./atelier.db")
	viper.SetDefault("picker.maxPixels", 4096*4096)
	viper.SetDefault("picker.concurrency", 2)
	viper.SetDefault("picker.maxUploadKB", 10240)
	viper.SetDefault("chat.maxContentLength", chat.DefaultMaxContentLength)
	viper.SetDefault("chat.rateLimit", 1)
	viper.SetDefault("chat.rateBurst", 5)
}

func (c Config) getDatabase() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
	}

	switch c.Database.Driver {
	case "sqlite":
		engine, err := gorm.Open(sqlite.Open(c.SQLite.Path), gormConfig)
		if err != nil {
			return nil, err
		}
		db, err := engine.DB()
		if err != nil {
			return nil, err
		}
		// SQLiteは同時書き込みできない
		db.SetMaxOpenConns(1)
		return engine, nil
	case "mysql", "":
		mc := mysql.NewConfig()
		mc.User = c.MariaDB.Username
		mc.Passwd = c.MariaDB.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", c.MariaDB.Host, c.MariaDB.Port)
		mc.DBName = c.MariaDB.Database
		mc.Collation = "utf8mb4_general_ci"
		mc.ParseTime = true
		mc.Params = map[string]string{"charset": "utf8mb4"}

		engine, err := gorm.Open(gmysql.Open(mc.FormatDSN()), gormConfig)
		if err != nil {
			return nil, err
		}
		db, err := engine.DB()
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(c.MariaDB.Connection.MaxOpen)
		db.SetMaxIdleConns(c.MariaDB.Connection.MaxIdle)
		db.SetConnMaxLifetime(time.Duration(c.MariaDB.Connection.LifeTime) * time.Second)
		return engine.Set("gorm:table_options", "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"), nil
	default:
		return nil, fmt.Errorf("unknown database driver: %s", c.Database.Driver)
	}
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:       c.DevMode,
		Version:           Version,
		Revision:          Revision,
		AccessLogging:     c.AccessLog.Enabled,
		Gzipped:           c.Gzip,
		PickerMaxUploadKB: c.Picker.MaxUploadKB,
		ChatRateLimit:     c.Chat.RateLimit,
		ChatRateBurst:     c.Chat.RateBurst,
	}
}

func providePickerConfig(c *Config) picker.Config {
	return picker.Config{
		MaxPixels:   c.Picker.MaxPixels,
		Concurrency: c.Picker.Concurrency,
	}
}

func provideChatManager(repo repository.ChatMessageRepository, catalog texture.Catalog, logger *zap.Logger, c *Config) chat.Manager {
	return chat.NewManager(repo, catalog, logger, c.Chat.MaxContentLength)
}

func provideUserManager(repo repository.UserRepository, logger *zap.Logger, c *Config) user.Manager {
	return user.NewManager(repo, logger, c.OwnerOpenID)
}
