package gorm

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/utils/gormutil"
	"github.com/traPtitech/atelier/utils/validator"
)

// CreateArtistTag implements ArtistTagRepository interface.
func (repo *Repository) CreateArtistTag(args repository.CreateArtistTagArgs) (*model.ArtistTag, error) {
	if err := vd.Validate(args.Name, validator.ArtistTagNameRuleRequired...); err != nil {
		return nil, repository.ArgError("args.Name", "Name must be 1-64 characters")
	}
	if args.Icon.Valid {
		if err := vd.Validate(args.Icon.String, validator.ArtistTagIconRule...); err != nil {
			return nil, repository.ArgError("args.Icon", "Icon must be 0-64 characters")
		}
	}
	if args.Color.Valid {
		if err := vd.Validate(args.Color.String, validator.HexColorRuleRequired...); err != nil {
			return nil, repository.ArgError("args.Color", "Color must be #RRGGBB")
		}
		args.Color.String = validator.NormalizeHexColor(args.Color.String)
	}

	tag := &model.ArtistTag{
		Name:        args.Name,
		Description: args.Description,
		Icon:        args.Icon,
		Color:       args.Color,
	}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		// 名前重複チェック
		if exists, err := gormutil.RecordExists(tx, &model.ArtistTag{Name: args.Name}); err != nil {
			return err
		} else if exists {
			return repository.ErrAlreadyExists
		}
		return tx.Create(tag).Error
	})
	if err != nil {
		return nil, convertError(err)
	}

	repo.hub.Publish(hub.Message{
		Name: event.ArtistTagCreated,
		Fields: hub.Fields{
			"tag": tag,
		},
	})
	return tag, nil
}

// GetArtistTag implements ArtistTagRepository interface.
func (repo *Repository) GetArtistTag(id int) (*model.ArtistTag, error) {
	if id == 0 {
		return nil, repository.ErrNotFound
	}
	var tag model.ArtistTag
	if err := repo.db.First(&tag, &model.ArtistTag{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &tag, nil
}

// GetArtistTags implements ArtistTagRepository interface.
func (repo *Repository) GetArtistTags() ([]*model.ArtistTag, error) {
	tags := make([]*model.ArtistTag, 0)
	if err := repo.db.Order("name").Find(&tags).Error; err != nil {
		return nil, convertError(err)
	}
	return tags, nil
}

// DeleteArtistTag implements ArtistTagRepository interface.
func (repo *Repository) DeleteArtistTag(id int) error {
	if id == 0 {
		return repository.ErrNilID
	}
	var removed int64
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		// 参照している付与を先に削除
		result := tx.Where(&model.UserTag{Tag: model.TagRef(id)}).Delete(&model.UserTag{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected

		result = tx.Delete(&model.ArtistTag{ID: id})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return convertError(err)
	}

	repo.hub.Publish(hub.Message{
		Name: event.ArtistTagDeleted,
		Fields: hub.Fields{
			"tag_id":              id,
			"removed_assignments": removed,
		},
	})
	return nil
}

// AddUserTag implements ArtistTagRepository interface.
func (repo *Repository) AddUserTag(userID, tagID int) (*model.UserTag, error) {
	if userID == 0 || tagID == 0 {
		return nil, repository.ErrNilID
	}
	ut := &model.UserTag{
		UserID: userID,
		Tag:    model.TagRef(tagID),
	}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var tag model.ArtistTag
		if err := tx.First(&tag, &model.ArtistTag{ID: tagID}).Error; err != nil {
			return err
		}
		ut.ArtistTag = &tag

		if exists, err := gormutil.RecordExists(tx, &model.UserTag{UserID: userID, Tag: ut.Tag}); err != nil {
			return err
		} else if exists {
			return repository.ErrAlreadyExists
		}
		return tx.Create(ut).Error
	})
	if err != nil {
		return nil, convertError(err)
	}

	repo.hub.Publish(hub.Message{
		Name: event.UserTagAdded,
		Fields: hub.Fields{
			"user_id": userID,
			"tag_id":  tagID,
		},
	})
	return ut, nil
}

// DeleteUserTag implements ArtistTagRepository interface.
func (repo *Repository) DeleteUserTag(userID, tagID int) error {
	if userID == 0 || tagID == 0 {
		return repository.ErrNilID
	}
	result := repo.db.
		Where(&model.UserTag{UserID: userID, Tag: model.TagRef(tagID)}).
		Delete(&model.UserTag{})
	if result.Error != nil {
		return convertError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	repo.hub.Publish(hub.Message{
		Name: event.UserTagRemoved,
		Fields: hub.Fields{
			"user_id": userID,
			"tag_id":  tagID,
		},
	})
	return nil
}

// GetUserTags implements ArtistTagRepository interface.
func (repo *Repository) GetUserTags(userID int) ([]*model.UserTag, error) {
	result := make([]*model.UserTag, 0)
	if userID == 0 {
		return result, nil
	}

	var uts []*model.UserTag
	if err := repo.db.Where(&model.UserTag{UserID: userID}).Order("createdAt, id").Find(&uts).Error; err != nil {
		return nil, convertError(err)
	}
	if len(uts) == 0 {
		return result, nil
	}

	ids := lo.Uniq(lo.Map(uts, func(ut *model.UserTag, _ int) int { return ut.TagID() }))
	var tags []*model.ArtistTag
	if err := repo.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, convertError(err)
	}
	tagMap := lo.KeyBy(tags, func(t *model.ArtistTag) int { return t.ID })

	for _, ut := range uts {
		tag, ok := tagMap[ut.TagID()]
		if !ok {
			continue
		}
		ut.ArtistTag = tag
		result = append(result, ut)
	}
	return result, nil
}

// GetUserIDsByArtistTag implements ArtistTagRepository interface.
func (repo *Repository) GetUserIDsByArtistTag(tagID int) ([]int, error) {
	ids := make([]int, 0)
	if tagID == 0 {
		return ids, nil
	}
	err := repo.db.
		Model(&model.UserTag{}).
		Where(&model.UserTag{Tag: model.TagRef(tagID)}).
		Order("createdAt, id").
		Pluck("userId", &ids).
		Error
	if err != nil {
		return nil, convertError(err)
	}
	return ids, nil
}
