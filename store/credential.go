package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/meinhoongagan/ai-receptionist/models"
)

// CredentialStore persists account records. One row per account; the email
// column carries a unique index, so two concurrent signups with the same
// email are serialized by the database and the loser sees ErrDuplicateEmail.
type CredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// CreateAccount persists a new account and returns it with its assigned id.
// faceEncoding may be nil for accounts created without a face sample.
func (s *CredentialStore) CreateAccount(ctx context.Context, email, passwordHash string, faceEncoding []byte) (*models.User, error) {
	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FaceEncoding: faceEncoding,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *CredentialStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetAvatarURL stores the profile-picture URL for an account.
func (s *CredentialStore) SetAvatarURL(ctx context.Context, id uint, url string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("avatar_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
