package validator

import (
	"regexp"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// HexColorRule #RRGGBB形式の色バリデーションルール
var HexColorRule = []vd.Rule{
	vd.Match(hexColorRegex).Error("must be #RRGGBB"),
}

// HexColorRuleRequired #RRGGBB形式の色バリデーションルール with Required
var HexColorRuleRequired = append([]vd.Rule{
	vd.Required,
}, HexColorRule...)

// ColorNameRule 保存色の名前バリデーションルール
var ColorNameRule = []vd.Rule{
	vd.RuneLength(0, 128),
}

// PaletteNameRule パレット名バリデーションルール
var PaletteNameRule = []vd.Rule{
	vd.RuneLength(1, 128),
}

// PaletteNameRuleRequired パレット名バリデーションルール with Required
var PaletteNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, PaletteNameRule...)

// PaletteColorsRule パレットの色配列バリデーションルール
var PaletteColorsRule = []vd.Rule{
	vd.Required,
	vd.Length(1, 64),
	vd.Each(HexColorRuleRequired...),
}

// ArtistTagNameRule アーティストタグ名バリデーションルール
var ArtistTagNameRule = []vd.Rule{
	vd.RuneLength(1, 64),
}

// ArtistTagNameRuleRequired アーティストタグ名バリデーションルール with Required
var ArtistTagNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, ArtistTagNameRule...)

// ArtistTagIconRule アーティストタグアイコンバリデーションルール
var ArtistTagIconRule = []vd.Rule{
	vd.RuneLength(0, 64),
}

// UserDisplayNameRule プロフィール表示名バリデーションルール
var UserDisplayNameRule = []vd.Rule{
	vd.Required,
	vd.RuneLength(1, 128),
}

// UserBioRule プロフィール自己紹介バリデーションルール
var UserBioRule = []vd.Rule{
	vd.RuneLength(0, 1000),
}

// AvatarURLRule アバター画像URLバリデーションルール
var AvatarURLRule = []vd.Rule{
	is.URL,
	vd.RuneLength(0, 2048),
}

// TextureIDRule テクスチャIDバリデーションルール
var TextureIDRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-z0-9-]+$`)).Error("must contain [a-z0-9-] only"),
	vd.RuneLength(1, 128),
}
