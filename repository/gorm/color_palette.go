package gorm

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/utils/gormutil"
	"github.com/traPtitech/atelier/utils/validator"
)

// CreateColorPalette implements ColorPaletteRepository interface.
func (repo *Repository) CreateColorPalette(args repository.CreateColorPaletteArgs) (*model.ColorPalette, error) {
	if args.UserID == 0 {
		return nil, repository.ErrNilID
	}
	if err := vd.Validate(args.Name, validator.PaletteNameRuleRequired...); err != nil {
		return nil, repository.ArgError("args.Name", "Name must be 1-128 characters")
	}
	if err := vd.Validate(args.Colors, validator.PaletteColorsRule...); err != nil {
		return nil, repository.ArgError("args.Colors", "Colors must be 1-64 #RRGGBB colors")
	}

	p := &model.ColorPalette{
		UserID:      args.UserID,
		Name:        args.Name,
		Description: args.Description,
		Colors:      validator.NormalizeHexColors(args.Colors),
		IsPublic:    args.IsPublic,
	}
	if err := repo.db.Create(p).Error; err != nil {
		return nil, convertError(err)
	}

	repo.hub.Publish(hub.Message{
		Name: event.PaletteCreated,
		Fields: hub.Fields{
			"user_id": args.UserID,
			"palette": p,
		},
	})
	return p, nil
}

// GetColorPalette implements ColorPaletteRepository interface.
func (repo *Repository) GetColorPalette(id int) (*model.ColorPalette, error) {
	if id == 0 {
		return nil, repository.ErrNotFound
	}
	var p model.ColorPalette
	if err := repo.db.First(&p, &model.ColorPalette{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &p, nil
}

// GetColorPalettes implements ColorPaletteRepository interface.
func (repo *Repository) GetColorPalettes(userID int) ([]*model.ColorPalette, error) {
	palettes := make([]*model.ColorPalette, 0)
	if userID == 0 {
		return palettes, nil
	}
	err := repo.db.
		Where(&model.ColorPalette{UserID: userID}).
		Order("createdAt DESC, id DESC").
		Find(&palettes).
		Error
	if err != nil {
		return nil, convertError(err)
	}
	return palettes, nil
}

// GetPublicColorPalettes implements ColorPaletteRepository interface.
func (repo *Repository) GetPublicColorPalettes(limit int) ([]*model.ColorPalette, error) {
	palettes := make([]*model.ColorPalette, 0)
	err := repo.db.
		Scopes(gormutil.LimitAndOffset(limit, 0)).
		Where("isPublic = ?", true).
		Order("createdAt DESC, id DESC").
		Find(&palettes).
		Error
	if err != nil {
		return nil, convertError(err)
	}
	return palettes, nil
}

// UpdateColorPalette implements ColorPaletteRepository interface.
func (repo *Repository) UpdateColorPalette(id int, args repository.UpdateColorPaletteArgs) error {
	if id == 0 {
		return repository.ErrNilID
	}
	changes := map[string]interface{}{}
	if args.Name.Valid {
		if err := vd.Validate(args.Name.String, validator.PaletteNameRuleRequired...); err != nil {
			return repository.ArgError("args.Name", "Name must be 1-128 characters")
		}
		changes["name"] = args.Name.String
	}
	if args.Description.Valid {
		changes["description"] = args.Description
	}
	if args.Colors != nil {
		if err := vd.Validate(args.Colors, validator.PaletteColorsRule...); err != nil {
			return repository.ArgError("args.Colors", "Colors must be 1-64 #RRGGBB colors")
		}
		changes["colors"] = model.HexColors(validator.NormalizeHexColors(args.Colors))
	}
	if args.IsPublic.Valid {
		changes["isPublic"] = args.IsPublic.Bool
	}

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var p model.ColorPalette
		if err := tx.First(&p, &model.ColorPalette{ID: id}).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&p).Updates(changes).Error
	})
	if err != nil {
		return convertError(err)
	}
	if len(changes) > 0 {
		repo.hub.Publish(hub.Message{
			Name: event.PaletteUpdated,
			Fields: hub.Fields{
				"palette_id": id,
			},
		})
	}
	return nil
}

// DeleteColorPalette implements ColorPaletteRepository interface.
func (repo *Repository) DeleteColorPalette(id int) error {
	if id == 0 {
		return repository.ErrNilID
	}
	result := repo.db.Delete(&model.ColorPalette{ID: id})
	if result.Error != nil {
		return convertError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	repo.hub.Publish(hub.Message{
		Name: event.PaletteDeleted,
		Fields: hub.Fields{
			"palette_id": id,
		},
	})
	return nil
}
