package palette

import (
	"errors"

	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
)

type managerImpl struct {
	R repository.ColorPaletteRepository
	L *zap.Logger
}

// NewManager カラーパレットマネージャーを生成します
func NewManager(repo repository.ColorPaletteRepository, logger *zap.Logger) Manager {
	return &managerImpl{
		R: repo,
		L: logger.Named("palette_manager"),
	}
}

func (m *managerImpl) List(ownerID int) ([]*model.ColorPalette, error) {
	palettes, err := m.R.GetColorPalettes(ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			m.L.Warn("failed to list palettes, returning empty list", zap.Int("userId", ownerID), zap.Error(err))
			return []*model.ColorPalette{}, nil
		}
		return nil, err
	}
	return palettes, nil
}

func (m *managerImpl) ListPublic(limit int) ([]*model.ColorPalette, error) {
	palettes, err := m.R.GetPublicColorPalettes(limit)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			m.L.Warn("failed to list public palettes, returning empty list", zap.Error(err))
			return []*model.ColorPalette{}, nil
		}
		return nil, err
	}
	return palettes, nil
}

func (m *managerImpl) Get(requesterID, id int) (*model.ColorPalette, error) {
	p, err := m.R.GetColorPalette(id)
	if err != nil {
		return nil, err
	}
	if !p.IsVisibleTo(requesterID) {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (m *managerImpl) Create(args repository.CreateColorPaletteArgs) (*model.ColorPalette, error) {
	return m.R.CreateColorPalette(args)
}

func (m *managerImpl) Update(requesterID, id int, args repository.UpdateColorPaletteArgs) (*model.ColorPalette, error) {
	if _, err := m.owned(requesterID, id); err != nil {
		return nil, err
	}
	if err := m.R.UpdateColorPalette(id, args); err != nil {
		return nil, err
	}
	return m.R.GetColorPalette(id)
}

func (m *managerImpl) Delete(requesterID, id int) error {
	if _, err := m.owned(requesterID, id); err != nil {
		return err
	}
	return m.R.DeleteColorPalette(id)
}

func (m *managerImpl) Export(requesterID, id int) (*ExportDocument, error) {
	p, err := m.Get(requesterID, id)
	if err != nil {
		return nil, err
	}
	return &ExportDocument{
		Name:        p.Name,
		Colors:      p.Colors,
		Description: p.Description,
	}, nil
}

func (m *managerImpl) owned(requesterID, id int) (*model.ColorPalette, error) {
	p, err := m.R.GetColorPalette(id)
	if err != nil {
		return nil, err
	}
	if p.UserID != requesterID {
		return nil, repository.ErrForbidden
	}
	return p, nil
}
