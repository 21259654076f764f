package v1

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/router/middlewares"
	"github.com/traPtitech/atelier/service/chat"
	"github.com/traPtitech/atelier/service/color"
	"github.com/traPtitech/atelier/service/counter"
	"github.com/traPtitech/atelier/service/palette"
	"github.com/traPtitech/atelier/service/picker"
	"github.com/traPtitech/atelier/service/rbac"
	"github.com/traPtitech/atelier/service/rbac/permission"
	"github.com/traPtitech/atelier/service/tag"
	"github.com/traPtitech/atelier/service/texture"
	"github.com/traPtitech/atelier/service/user"
)

type Handlers struct {
	RBAC               rbac.RBAC
	Repo               repository.Repository
	Logger             *zap.Logger
	ChatManager        chat.Manager
	ChatMessageCounter counter.ChatMessageCounter
	ColorManager       color.Manager
	PaletteManager     palette.Manager
	Picker             picker.Processor
	TagManager         tag.Manager
	Textures           texture.Catalog
	UserCounter        counter.UserCounter
	UserManager        user.Manager

	Config
}

type Config struct {
	// PickerMaxUploadKB 色抽出用画像の最大サイズ(KB)
	PickerMaxUploadKB int64
	// ChatRateLimit チャット投稿の1秒あたりの許容回数。0以下の場合は制限しません
	ChatRateLimit float64
	// ChatRateBurst チャット投稿の許容バースト数
	ChatRateBurst int
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	// middleware preparation
	requires := middlewares.AccessControlMiddlewareGenerator(h.RBAC)
	retrieve := middlewares.NewParamRetriever(h.Repo)
	auth := middlewares.UserAuthenticate(h.UserManager)

	api := e.Group("/v1")
	{
		apiTextures := api.Group("/textures")
		{
			apiTextures.GET("", h.GetTextures)
			apiTextures.GET("/categories", h.GetTextureCategories)
			apiTextures.GET("/:textureID", h.GetTexture)
		}
		apiTags := api.Group("/tags")
		{
			apiTags.GET("", h.GetArtistTags)
			apiTags.POST("", h.CreateArtistTag, auth, requires(permission.ManageArtistTags))
			apiTagsTID := apiTags.Group("/:tagID", auth)
			{
				apiTagsTID.DELETE("", h.DeleteArtistTag, requires(permission.ManageArtistTags))
				apiTagsTID.GET("/users", h.GetArtistTagUsers, requires(permission.GetArtistTag), retrieve.ArtistTagID())
			}
		}
		apiUsers := api.Group("/users", auth)
		{
			apiUsersMe := apiUsers.Group("/me")
			{
				apiUsersMe.GET("", h.GetMe, requires(permission.GetMe))
				apiUsersMe.PATCH("", h.EditMe, requires(permission.EditMe))
				apiUsersMe.GET("/tags", h.GetMyArtistTags, requires(permission.GetArtistTag))
			}
			apiUsersUID := apiUsers.Group("/:userID")
			{
				apiUsersUID.GET("", h.GetUser, requires(permission.GetUser), retrieve.UserID())
				apiUsersUIDTags := apiUsersUID.Group("/tags")
				{
					apiUsersUIDTags.GET("", h.GetUserArtistTags, requires(permission.GetArtistTag), retrieve.UserID())
					apiUsersUIDTags.POST("", h.AssignArtistTag, requires(permission.ManageArtistTags), retrieve.UserID())
					apiUsersUIDTags.DELETE("/:tagID", h.UnassignArtistTag, requires(permission.ManageArtistTags), retrieve.UserID())
				}
			}
		}
		apiColors := api.Group("/colors", auth)
		{
			apiColors.GET("", h.GetMySavedColors, requires(permission.GetSavedColor))
			apiColors.POST("", h.SaveColor, requires(permission.SaveColor))
			apiColors.DELETE("/:colorID", h.DeleteSavedColor, requires(permission.DeleteSavedColor))
		}
		apiPalettes := api.Group("/palettes", auth)
		{
			apiPalettes.GET("", h.GetMyPalettes, requires(permission.GetPalette))
			apiPalettes.POST("", h.CreatePalette, requires(permission.CreatePalette))
			apiPalettes.GET("/public", h.GetPublicPalettes, requires(permission.GetPalette))
			apiPalettesPID := apiPalettes.Group("/:paletteID")
			{
				apiPalettesPID.GET("", h.GetPalette, requires(permission.GetPalette))
				apiPalettesPID.PATCH("", h.EditPalette, requires(permission.EditPalette))
				apiPalettesPID.DELETE("", h.DeletePalette, requires(permission.DeletePalette))
				apiPalettesPID.GET("/export", h.ExportPalette, requires(permission.GetPalette))
			}
		}
		apiChat := api.Group("/chat", auth)
		{
			apiChat.GET("/messages", h.GetChatMessages, requires(permission.GetChatMessage))
			apiChat.POST("/messages", h.PostChatMessage, requires(permission.PostChatMessage), h.chatRateLimit())
			apiChat.GET("/stats", h.GetChatStats, requires(permission.GetChatMessage))
		}
		apiPicker := api.Group("/picker", auth)
		{
			limit := middlewares.RequestBodyLengthLimit(h.PickerMaxUploadKB)
			apiPicker.POST("/sample", h.SampleColor, requires(permission.UsePicker), limit)
			apiPicker.POST("/commit", h.CommitColor, requires(permission.UsePicker, permission.SaveColor), limit)
		}
	}
}

func (h *Handlers) chatRateLimit() echo.MiddlewareFunc {
	if h.ChatRateLimit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return middlewares.RateLimit(rate.Limit(h.ChatRateLimit), h.ChatRateBurst, h.Logger.Named("chat_rate_limit"))
}
