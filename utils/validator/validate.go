package validator

import (
	"strings"
)

// IsHexColor #RRGGBB形式の文字列かどうか
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// NormalizeHexColor #RRGGBB形式の文字列を大文字に正規化します
func NormalizeHexColor(s string) string {
	return strings.ToUpper(s)
}

// NormalizeHexColors 色配列を大文字に正規化した新しいスライスを返します
func NormalizeHexColors(colors []string) []string {
	res := make([]string, len(colors))
	for i, c := range colors {
		res[i] = NormalizeHexColor(c)
	}
	return res
}
