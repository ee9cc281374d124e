package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/meinhoongagan/ai-receptionist/face"
	"github.com/meinhoongagan/ai-receptionist/models"
	"github.com/meinhoongagan/ai-receptionist/store"
)

// AccountService handles signup and the two login modes. Login failures are
// boolean outcomes, not errors: unknown email, wrong password, missing face
// data, no detected face and face mismatch all come back as false. The error
// return is reserved for the store or the face service being unreachable.
type AccountService struct {
	creds   *store.CredentialStore
	encoder face.Encoder
}

// NewAccountService wires the service to its store and face encoder. encoder
// may be nil when no face service is configured; face features are then off
// and face login always fails.
func NewAccountService(creds *store.CredentialStore, encoder face.Encoder) *AccountService {
	return &AccountService{creds: creds, encoder: encoder}
}

// SignUp creates an account. When faceImage is provided its first detected
// face encoding is stored alongside the credentials; an image with no
// detectable face still produces an account, just without face data.
// Propagates store.ErrDuplicateEmail unchanged.
func (s *AccountService) SignUp(ctx context.Context, email, password string, faceImage []byte) (*models.User, error) {
	var encodingBytes []byte
	if len(faceImage) > 0 && s.encoder != nil {
		encodings, err := s.encoder.Encode(ctx, faceImage)
		if err != nil {
			return nil, fmt.Errorf("encode face: %w", err)
		}
		if len(encodings) > 0 {
			encodingBytes, err = encodings[0].MarshalBinary()
			if err != nil {
				return nil, err
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.creds.CreateAccount(ctx, email, string(hash), encodingBytes)
}

// LogInWithPassword verifies the password against the stored hash.
func (s *AccountService) LogInWithPassword(ctx context.Context, email, password string) (bool, error) {
	user, err := s.creds.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}

// LogInWithFace encodes the captured image and compares it against the
// account's stored encoding within face.Tolerance.
func (s *AccountService) LogInWithFace(ctx context.Context, email string, faceImage []byte) (bool, error) {
	user, err := s.creds.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !user.HasFace() || s.encoder == nil {
		return false, nil
	}

	stored, err := face.UnmarshalBinary(user.FaceEncoding)
	if err != nil {
		return false, err
	}

	encodings, err := s.encoder.Encode(ctx, faceImage)
	if err != nil {
		return false, fmt.Errorf("encode face: %w", err)
	}
	if len(encodings) == 0 {
		return false, nil
	}
	return face.Match(stored, encodings[0], face.Tolerance), nil
}

// GetAccountIDByEmail resolves an email to its account id. ok is false for an
// unregistered email; err is only set when the store itself fails.
func (s *AccountService) GetAccountIDByEmail(ctx context.Context, email string) (id uint, ok bool, err error) {
	user, err := s.creds.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return user.ID, true, nil
}
