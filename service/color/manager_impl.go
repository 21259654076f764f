package color

import (
	"errors"

	"github.com/guregu/null"
	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
)

type managerImpl struct {
	R repository.SavedColorRepository
	L *zap.Logger
}

// NewManager 保存色マネージャーを生成します
func NewManager(repo repository.SavedColorRepository, logger *zap.Logger) Manager {
	return &managerImpl{
		R: repo,
		L: logger.Named("color_manager"),
	}
}

func (m *managerImpl) List(ownerID int) ([]*model.SavedColor, error) {
	colors, err := m.R.GetSavedColors(ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			m.L.Warn("failed to list saved colors, returning empty list", zap.Int("userId", ownerID), zap.Error(err))
			return []*model.SavedColor{}, nil
		}
		return nil, err
	}
	return colors, nil
}

func (m *managerImpl) Save(ownerID int, htmlColor string, name null.String) (*model.SavedColor, error) {
	return m.R.CreateSavedColor(ownerID, htmlColor, name)
}

func (m *managerImpl) Delete(requesterID, colorID int) error {
	c, err := m.R.GetSavedColor(colorID)
	if err != nil {
		return err
	}
	if c.UserID != requesterID {
		return repository.ErrForbidden
	}
	return m.R.DeleteSavedColor(colorID)
}
