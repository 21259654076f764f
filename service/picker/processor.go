package picker

import (
	"context"
	"image"
	_ "image/gif"  // image.Decode用
	_ "image/jpeg" // image.Decode用
	_ "image/png"  // image.Decode用
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // image.Decode用
	_ "golang.org/x/image/tiff" // image.Decode用
	_ "golang.org/x/image/webp" // image.Decode用
	"golang.org/x/sync/semaphore"
)

// Processor アップロードされた画像のデコーダー
type Processor interface {
	// Decode 画像をデコードします
	//
	// EXIFの向き情報は適用されます。
	// 画素数がMaxPixelsを超える場合、ErrPixelLimitExceededを返します。
	// 画像として解釈できない場合、ErrInvalidImageSrcを返します。
	Decode(ctx context.Context, src io.ReadSeeker) (image.Image, error)
}

type defaultProcessor struct {
	c  Config
	sp *semaphore.Weighted
}

// NewProcessor Processorを生成します
func NewProcessor(c Config) Processor {
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	return &defaultProcessor{
		c:  c,
		sp: semaphore.NewWeighted(int64(c.Concurrency)),
	}
}

func (p *defaultProcessor) Decode(ctx context.Context, src io.ReadSeeker) (image.Image, error) {
	if err := p.sp.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer p.sp.Release(1)

	imgCfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, ErrInvalidImageSrc
	}

	// 画素数チェック
	if p.c.MaxPixels > 0 && imgCfg.Width*imgCfg.Height > p.c.MaxPixels {
		return nil, ErrPixelLimitExceeded
	}

	// 先頭に戻す
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrInvalidImageSrc
	}
	return img, nil
}
