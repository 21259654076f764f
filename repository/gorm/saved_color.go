package gorm

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/leandro-lugaresi/hub"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/utils/validator"
)

// CreateSavedColor implements SavedColorRepository interface.
func (repo *Repository) CreateSavedColor(userID int, htmlColor string, name null.String) (*model.SavedColor, error) {
	if userID == 0 {
		return nil, repository.ErrNilID
	}
	if err := vd.Validate(htmlColor, validator.HexColorRuleRequired...); err != nil {
		return nil, repository.ArgError("htmlColor", "htmlColor must be #RRGGBB")
	}
	if name.Valid {
		if err := vd.Validate(name.String, validator.ColorNameRule...); err != nil {
			return nil, repository.ArgError("name", "name must be 0-128 characters")
		}
	}

	c := &model.SavedColor{
		UserID:    userID,
		HTMLColor: validator.NormalizeHexColor(htmlColor),
		Name:      name,
	}
	if err := repo.db.Create(c).Error; err != nil {
		return nil, convertError(err)
	}

	repo.hub.Publish(hub.Message{
		Name: event.ColorSaved,
		Fields: hub.Fields{
			"user_id": userID,
			"color":   c,
		},
	})
	return c, nil
}

// GetSavedColor implements SavedColorRepository interface.
func (repo *Repository) GetSavedColor(id int) (*model.SavedColor, error) {
	if id == 0 {
		return nil, repository.ErrNotFound
	}
	var c model.SavedColor
	if err := repo.db.First(&c, &model.SavedColor{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &c, nil
}

// GetSavedColors implements SavedColorRepository interface.
func (repo *Repository) GetSavedColors(userID int) ([]*model.SavedColor, error) {
	colors := make([]*model.SavedColor, 0)
	if userID == 0 {
		return colors, nil
	}
	err := repo.db.
		Where(&model.SavedColor{UserID: userID}).
		Order("createdAt, id").
		Find(&colors).
		Error
	if err != nil {
		return nil, convertError(err)
	}
	return colors, nil
}

// DeleteSavedColor implements SavedColorRepository interface.
func (repo *Repository) DeleteSavedColor(id int) error {
	if id == 0 {
		return repository.ErrNilID
	}
	result := repo.db.Delete(&model.SavedColor{ID: id})
	if result.Error != nil {
		return convertError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	repo.hub.Publish(hub.Message{
		Name: event.ColorDeleted,
		Fields: hub.Fields{
			"color_id": id,
		},
	})
	return nil
}
