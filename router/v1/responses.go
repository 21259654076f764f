package v1

import (
	"time"

	"github.com/guregu/null"
	"github.com/samber/lo"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/service/texture"
)

type User struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Avatar    null.String `json:"avatar"`
	Bio       null.String `json:"bio"`
	Role      string      `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func formatUser(u *model.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.DisplayName(),
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func formatUsers(users []*model.User) []*User {
	return lo.Map(users, func(u *model.User, _ int) *User { return formatUser(u) })
}

type Me struct {
	User
	Email        null.String `json:"email"`
	LoginMethod  null.String `json:"loginMethod"`
	LastSignedIn time.Time   `json:"lastSignedIn"`
	Permissions  []string    `json:"permissions"`
}

type SavedColor struct {
	ID        int         `json:"id"`
	UserID    int         `json:"userId"`
	HTMLColor string      `json:"htmlColor"`
	Name      null.String `json:"name"`
	CreatedAt time.Time   `json:"createdAt"`
}

func formatSavedColor(c *model.SavedColor) *SavedColor {
	return &SavedColor{
		ID:        c.ID,
		UserID:    c.UserID,
		HTMLColor: c.HTMLColor,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func formatSavedColors(colors []*model.SavedColor) []*SavedColor {
	return lo.Map(colors, func(c *model.SavedColor, _ int) *SavedColor { return formatSavedColor(c) })
}

type Palette struct {
	ID          int         `json:"id"`
	UserID      int         `json:"userId"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Colors      []string    `json:"colors"`
	IsPublic    bool        `json:"isPublic"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func formatPalette(p *model.ColorPalette) *Palette {
	colors := []string(p.Colors)
	if colors == nil {
		colors = []string{}
	}
	return &Palette{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Colors:      colors,
		IsPublic:    p.IsPublic,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func formatPalettes(palettes []*model.ColorPalette) []*Palette {
	return lo.Map(palettes, func(p *model.ColorPalette, _ int) *Palette { return formatPalette(p) })
}

type ArtistTag struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Icon        null.String `json:"icon"`
	Color       null.String `json:"color"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func formatArtistTag(t *model.ArtistTag) *ArtistTag {
	return &ArtistTag{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
		Color:       t.Color,
		CreatedAt:   t.CreatedAt,
	}
}

func formatArtistTags(tags []*model.ArtistTag) []*ArtistTag {
	return lo.Map(tags, func(t *model.ArtistTag, _ int) *ArtistTag { return formatArtistTag(t) })
}

type UserTag struct {
	ID        int        `json:"id"`
	UserID    int        `json:"userId"`
	TagID     int        `json:"tagId"`
	Tag       *ArtistTag `json:"tag"`
	CreatedAt time.Time  `json:"createdAt"`
}

func formatUserTag(ut *model.UserTag) *UserTag {
	res := &UserTag{
		ID:        ut.ID,
		UserID:    ut.UserID,
		TagID:     ut.TagID(),
		CreatedAt: ut.CreatedAt,
	}
	if ut.ArtistTag != nil {
		res.Tag = formatArtistTag(ut.ArtistTag)
	}
	return res
}

func formatUserTags(uts []*model.UserTag) []*UserTag {
	return lo.Map(uts, func(ut *model.UserTag, _ int) *UserTag { return formatUserTag(ut) })
}

type ChatMessage struct {
	ID            int         `json:"id"`
	UserID        int         `json:"userId"`
	UserName      string      `json:"userName"`
	Message       string      `json:"message"`
	ColorShared   null.String `json:"colorShared"`
	TextureShared null.String `json:"textureShared"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func formatChatMessage(m *model.ChatMessage) *ChatMessage {
	return &ChatMessage{
		ID:            m.ID,
		UserID:        m.UserID,
		UserName:      m.UserName,
		Message:       m.Message,
		ColorShared:   m.ColorShared,
		TextureShared: m.TextureShared,
		CreatedAt:     m.CreatedAt,
	}
}

func formatChatMessages(messages []*model.ChatMessage) []*ChatMessage {
	return lo.Map(messages, func(m *model.ChatMessage, _ int) *ChatMessage { return formatChatMessage(m) })
}

type TextureCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func formatTextureCategories(categories []*texture.Category, lang texture.Lang) []*TextureCategory {
	return lo.Map(categories, func(c *texture.Category, _ int) *TextureCategory {
		return &TextureCategory{ID: c.ID, Name: c.Name.In(lang)}
	})
}

type Texture struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Name     string `json:"name"`
	Tutorial string `json:"tutorial"`
}

func formatTexture(t *texture.Texture, lang texture.Lang) *Texture {
	return &Texture{
		ID:       t.ID,
		Category: t.Category,
		Image:    t.Image,
		Name:     t.Name.In(lang),
		Tutorial: t.Tutorial.In(lang),
	}
}

func formatTextures(textures []*texture.Texture, lang texture.Lang) []*Texture {
	return lo.Map(textures, func(t *texture.Texture, _ int) *Texture { return formatTexture(t, lang) })
}
