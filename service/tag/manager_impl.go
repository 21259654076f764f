package tag

import (
	"errors"

	"go.uber.org/zap"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
)

type managerImpl struct {
	R  repository.ArtistTagRepository
	UR repository.UserRepository
	L  *zap.Logger
}

// NewManager アーティストタグマネージャーを生成します
func NewManager(repo repository.ArtistTagRepository, ur repository.UserRepository, logger *zap.Logger) Manager {
	return &managerImpl{
		R:  repo,
		UR: ur,
		L:  logger.Named("tag_manager"),
	}
}

func (m *managerImpl) List() ([]*model.ArtistTag, error) {
	tags, err := m.R.GetArtistTags()
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			m.L.Warn("failed to list artist tags, returning empty list", zap.Error(err))
			return []*model.ArtistTag{}, nil
		}
		return nil, err
	}
	return tags, nil
}

func (m *managerImpl) Create(args repository.CreateArtistTagArgs) (*model.ArtistTag, error) {
	tag, err := m.R.CreateArtistTag(args)
	if err != nil {
		return nil, err
	}
	m.L.Info("artist tag created", zap.Int("tagId", tag.ID), zap.String("name", tag.Name))
	return tag, nil
}

func (m *managerImpl) Delete(id int) error {
	if err := m.R.DeleteArtistTag(id); err != nil {
		return err
	}
	m.L.Info("artist tag deleted", zap.Int("tagId", id))
	return nil
}

func (m *managerImpl) Assign(userID, tagID int) (*model.UserTag, error) {
	if _, err := m.UR.GetUser(userID); err != nil {
		return nil, err
	}
	return m.R.AddUserTag(userID, tagID)
}

func (m *managerImpl) Unassign(userID, tagID int) error {
	return m.R.DeleteUserTag(userID, tagID)
}

func (m *managerImpl) GetUserTags(userID int) ([]*model.UserTag, error) {
	tags, err := m.R.GetUserTags(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			m.L.Warn("failed to list user tags, returning empty list", zap.Int("userId", userID), zap.Error(err))
			return []*model.UserTag{}, nil
		}
		return nil, err
	}
	return tags, nil
}

func (m *managerImpl) GetUsersByTag(tagID int) ([]*model.User, error) {
	if _, err := m.R.GetArtistTag(tagID); err != nil {
		return nil, err
	}
	ids, err := m.R.GetUserIDsByArtistTag(tagID)
	if err != nil {
		return nil, err
	}
	return m.UR.GetUsers(ids)
}
