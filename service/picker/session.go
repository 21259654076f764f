package picker

import (
	"context"
	"image"
	"sync"

	"github.com/traPtitech/atelier/model"
)

// State ピッキングセッションの状態
type State int

const (
	// Idle 有効な位置にカーソルがない
	Idle State = iota
	// Hovering 有効な位置にカーソルがあり、色が取得されている
	Hovering
	// Saved 直前のホバー色が保存された
	Saved
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	case Saved:
		return "saved"
	default:
		return "unknown"
	}
}

// SaveFunc 確定した色を永続化する関数
type SaveFunc func(ctx context.Context, c Color) (*model.SavedColor, error)

// Session 1枚の画像に対するピッキングセッション
type Session struct {
	mu      sync.Mutex
	img     image.Image
	display image.Point
	state   State
	hovered Color
	save    SaveFunc
}

// NewSession Sessionを生成します
//
// imgがnilの場合、Loadされるまでどの位置も無効です。
func NewSession(img image.Image, display image.Point, save SaveFunc) *Session {
	return &Session{
		img:     img,
		display: display,
		save:    save,
	}
}

// Load 画像と表示サイズを差し替えます。状態はIdleに戻ります
func (s *Session) Load(img image.Image, display image.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.img = img
	s.display = display
	s.state = Idle
	s.hovered = Color{}
}

// Move カーソル位置を更新します
//
// 有効な位置であればHovering、そうでなければIdleに遷移し、ホバー中の色を返します。
func (s *Session) Move(cursor Point) (Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := Sample(s.img, s.display, cursor)
	if !ok {
		s.state = Idle
		s.hovered = Color{}
		return Color{}, false
	}
	s.state = Hovering
	s.hovered = c
	return c, true
}

// Leave カーソルが画像から離れました。Idleに遷移します
func (s *Session) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Idle
	s.hovered = Color{}
}

// Commit ホバー中の色を保存します
//
// Hovering以外の状態では何もせず(nil, nil)を返します。
// 保存に失敗した場合は状態を変えずにエラーを返します。
func (s *Session) Commit(ctx context.Context) (*model.SavedColor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Hovering || s.save == nil {
		return nil, nil
	}
	saved, err := s.save(ctx, s.hovered)
	if err != nil {
		return nil, err
	}
	s.state = Saved
	return saved, nil
}

// State 現在の状態を返します
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Hovered ホバー中の色を返します。Hovering以外ではfalseです
func (s *Session) Hovered() (Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hovered, s.state == Hovering
}
