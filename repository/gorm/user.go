package gorm

import (
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"

	"github.com/traPtitech/atelier/event"
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/service/rbac/role"
	"github.com/traPtitech/atelier/utils/validator"
)

// UpsertUser implements UserRepository interface.
func (repo *Repository) UpsertUser(args repository.UpsertUserArgs) (*model.User, error) {
	if len(args.OpenID) == 0 || len(args.OpenID) > 64 {
		return nil, repository.ArgError("args.OpenID", "OpenID must be 1-64 characters")
	}
	if args.LastSignedIn.IsZero() {
		args.LastSignedIn = time.Now()
	}

	var (
		user    model.User
		created bool
	)
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&model.User{OpenID: args.OpenID}).Limit(1).Find(&user).Error
		if err != nil {
			return err
		}

		if user.ID == 0 {
			r := args.Role
			if len(r) == 0 {
				r = role.User
			}
			user = model.User{
				OpenID:       args.OpenID,
				Name:         args.Name,
				Email:        args.Email,
				LoginMethod:  args.LoginMethod,
				Role:         r,
				LastSignedIn: args.LastSignedIn,
			}
			created = true
			return tx.Create(&user).Error
		}

		changes := map[string]interface{}{
			"lastSignedIn": args.LastSignedIn,
		}
		// プロフィールで設定された名前は上書きしない
		if args.Name.Valid && !user.Name.Valid {
			changes["name"] = args.Name
			user.Name = args.Name
		}
		if args.Email.Valid {
			changes["email"] = args.Email
			user.Email = args.Email
		}
		if args.LoginMethod.Valid {
			changes["loginMethod"] = args.LoginMethod
			user.LoginMethod = args.LoginMethod
		}
		if len(args.Role) > 0 && args.Role != user.Role {
			changes["role"] = args.Role
			user.Role = args.Role
		}
		user.LastSignedIn = args.LastSignedIn
		return tx.Model(&user).Updates(changes).Error
	})
	if err != nil {
		return nil, convertError(err)
	}

	if created {
		repo.hub.Publish(hub.Message{
			Name: event.UserCreated,
			Fields: hub.Fields{
				"user": &user,
			},
		})
	}
	return &user, nil
}

// GetUser implements UserRepository interface.
func (repo *Repository) GetUser(id int) (*model.User, error) {
	if id == 0 {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := repo.db.First(&user, &model.User{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// GetUserByOpenID implements UserRepository interface.
func (repo *Repository) GetUserByOpenID(openID string) (*model.User, error) {
	if len(openID) == 0 {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := repo.db.First(&user, &model.User{OpenID: openID}).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// GetUsers implements UserRepository interface.
func (repo *Repository) GetUsers(ids []int) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	if err := repo.db.Where("id IN ?", ids).Order("id").Find(&users).Error; err != nil {
		return nil, convertError(err)
	}
	return users, nil
}

// UpdateUser implements UserRepository interface.
func (repo *Repository) UpdateUser(id int, args repository.UpdateUserArgs) error {
	if id == 0 {
		return repository.ErrNilID
	}
	changes := map[string]interface{}{}
	if args.Name.Valid {
		if err := vd.Validate(args.Name.String, validator.UserDisplayNameRule...); err != nil {
			return repository.ArgError("args.Name", "Name must be 1-128 characters")
		}
		changes["name"] = args.Name
	}
	if args.Bio.Valid {
		if err := vd.Validate(args.Bio.String, validator.UserBioRule...); err != nil {
			return repository.ArgError("args.Bio", "Bio must be 0-1000 characters")
		}
		changes["bio"] = args.Bio
	}
	if args.Avatar.Valid {
		if err := vd.Validate(args.Avatar.String, validator.AvatarURLRule...); err != nil {
			return repository.ArgError("args.Avatar", "Avatar must be a URL")
		}
		changes["avatar"] = args.Avatar
	}

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var u model.User
		if err := tx.First(&u, &model.User{ID: id}).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&u).Updates(changes).Error
	})
	if err != nil {
		return convertError(err)
	}
	if len(changes) > 0 {
		repo.hub.Publish(hub.Message{
			Name: event.UserUpdated,
			Fields: hub.Fields{
				"user_id": id,
			},
		})
	}
	return nil
}
