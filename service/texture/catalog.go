package texture

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrNotFound テクスチャが見つかりません
var ErrNotFound = errors.New("texture not found")

// Lang 表示言語
type Lang string

const (
	// Portuguese ポルトガル語
	Portuguese Lang = "pt"
	// English 英語
	English Lang = "en"
)

// ParseLang 文字列を言語に変換します。未知の値はポルトガル語です
func ParseLang(s string) Lang {
	if Lang(s) == English {
		return English
	}
	return Portuguese
}

// Localized 言語別の文字列
type Localized struct {
	PT string `yaml:"pt"`
	EN string `yaml:"en"`
}

// In 指定した言語の文字列を返します
func (l Localized) In(lang Lang) string {
	if lang == English {
		return l.EN
	}
	return l.PT
}

// Category テクスチャのカテゴリ
type Category struct {
	ID   string    `yaml:"id"`
	Name Localized `yaml:"name"`
}

// Texture テクスチャと描き方のチュートリアル
type Texture struct {
	ID       string    `yaml:"id"`
	Category string    `yaml:"category"`
	Image    string    `yaml:"image"`
	Name     Localized `yaml:"name"`
	Tutorial Localized `yaml:"tutorial"`
}

// Catalog テクスチャカタログ
type Catalog interface {
	// Categories 全てのカテゴリを表示順で返します
	Categories() []*Category
	// List 指定したカテゴリのテクスチャを返します。空文字または"all"の場合は全てです
	List(category string) []*Texture
	// Get 指定したIDのテクスチャを返します
	//
	// 存在しない場合、ErrNotFoundを返します。
	Get(id string) (*Texture, error)
	// Exists 指定したIDのテクスチャが存在するかどうか
	Exists(id string) bool
}

type catalog struct {
	categories []*Category
	textures   []*Texture
	byID       map[string]*Texture
}

// NewCatalog 組み込みのテクスチャカタログを読み込みます
func NewCatalog() (Catalog, error) {
	return parse(catalogYAML)
}

func parse(b []byte) (*catalog, error) {
	var doc struct {
		Categories []*Category `yaml:"categories"`
		Textures   []*Texture  `yaml:"textures"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse texture catalog: %w", err)
	}

	cats := make(map[string]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		cats[c.ID] = true
	}
	byID := make(map[string]*Texture, len(doc.Textures))
	for _, t := range doc.Textures {
		if !cats[t.Category] {
			return nil, fmt.Errorf("texture %s has unknown category %s", t.ID, t.Category)
		}
		if _, ok := byID[t.ID]; ok {
			return nil, fmt.Errorf("duplicated texture id: %s", t.ID)
		}
		byID[t.ID] = t
	}
	return &catalog{
		categories: doc.Categories,
		textures:   doc.Textures,
		byID:       byID,
	}, nil
}

func (c *catalog) Categories() []*Category {
	return c.categories
}

func (c *catalog) List(category string) []*Texture {
	if len(category) == 0 || category == "all" {
		return c.textures
	}
	res := make([]*Texture, 0)
	for _, t := range c.textures {
		if t.Category == category {
			res = append(res, t)
		}
	}
	return res
}

func (c *catalog) Get(id string) (*Texture, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (c *catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}
