package picker

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Point 表示領域上の座標
type Point struct {
	X float64
	Y float64
}

// Color アルファを除いたRGB色
type Color struct {
	R, G, B uint8
}

// Hex #RRGGBB形式(大文字)の文字列を返します
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ColorOf 任意の色をアルファを除いたColorに変換します
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Sample 表示サイズdisplayで描画された画像imgの、cursor位置にある画素の色を返します
//
// 画像の元の解像度と表示サイズの比で座標を変換し、小数点以下を切り捨てます。
// 画像が未読み込み(nil)、表示サイズが0、またはcursorが表示領域の外にある場合はfalseを返します。
func Sample(img image.Image, display image.Point, cursor Point) (Color, bool) {
	if img == nil || display.X <= 0 || display.Y <= 0 {
		return Color{}, false
	}
	if math.IsNaN(cursor.X) || math.IsNaN(cursor.Y) {
		return Color{}, false
	}
	if cursor.X < 0 || cursor.Y < 0 || cursor.X > float64(display.X) || cursor.Y > float64(display.Y) {
		return Color{}, false
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Color{}, false
	}

	sx := int(math.Floor(cursor.X * float64(w) / float64(display.X)))
	sy := int(math.Floor(cursor.Y * float64(h) / float64(display.Y)))
	// 右端・下端ちょうどの場合のみ最後の画素を読む
	sx = min(sx, w-1)
	sy = min(sy, h-1)

	return ColorOf(img.At(b.Min.X+sx, b.Min.Y+sy)), true
}
