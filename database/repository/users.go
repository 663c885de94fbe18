package repository

import (
	"context"
	"fmt"

	"github.com/blogbuster/database"
	"github.com/blogbuster/pkg/gorm"
)

type Users struct {
	DB *database.Connection
}

func (r Users) FindBy(ctx context.Context, username string) (*database.User, error) {
	var user database.User

	err := r.DB.Sql().WithContext(ctx).Where("username = ?", username).First(&user).Error

	if gorm.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("issue finding user [%s]: %w", username, err)
	}

	return &user, nil
}

// FirstOrCreate returns the author with the given username, creating it from
// attrs when missing.
func (r Users) FirstOrCreate(ctx context.Context, attrs database.UsersAttrs) (*database.User, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	user, err := r.FindBy(ctx, attrs.Username)
	if err != nil || user != nil {
		return user, err
	}

	user = &database.User{
		Username:    attrs.Username,
		FirstName:   attrs.FirstName,
		LastName:    attrs.LastName,
		DisplayName: attrs.DisplayName,
		Email:       attrs.Email,
		Bio:         attrs.Bio,
	}

	if err := r.DB.Sql().WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("issue creating user [%s]: %w", attrs.Username, err)
	}

	return user, nil
}
