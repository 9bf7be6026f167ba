package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/apperror"
	"github.com/ternurin/paletas-api/internal/auth"
	"github.com/ternurin/paletas-api/internal/models"
)

type UserInput struct {
	Email    string
	Password string
	Username string
	IsAdmin  bool
}

func ListUsers(gdb *gorm.DB) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := gdb.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func GetUser(gdb *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := gdb.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Usuario no encontrado")
		}
		return nil, err
	}
	return &user, nil
}

func CreateUser(gdb *gorm.DB, in UserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var existing models.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperror.Conflict("Email ya registrado")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Username:     in.Username,
		IsAdmin:      in.IsAdmin,
	}
	if err := gdb.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces the account fields; the password is re-hashed only
// when a new one is supplied.
func UpdateUser(gdb *gorm.DB, id uint, in UserInput) (*models.User, error) {
	user, err := GetUser(gdb, id)
	if err != nil {
		return nil, err
	}

	user.Username = in.Username
	user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := gdb.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account; its orders go with it.
func DeleteUser(gdb *gorm.DB, id uint) error {
	user, err := GetUser(gdb, id)
	if err != nil {
		return err
	}
	return gdb.Select("Orders").Delete(user).Error
}

// Authenticate verifies the credential pair and returns the account.
func Authenticate(gdb *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	err := gdb.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Validation("Email o contraseña incorrectos")
		}
		return nil, err
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, apperror.Validation("Email o contraseña incorrectos")
	}
	return &user, nil
}
