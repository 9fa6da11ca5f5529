package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// CredentialVerifier checks a credential pair and returns the matching user.
// The store-backed implementation below is the default; deployments with a
// real identity provider swap this without touching callers.
type CredentialVerifier interface {
	Verify(email string, password string) (models.User, error)
}

type AuthUserRepository interface {
	FindByNormalizedEmail(email string) (models.User, bool, error)
	FindByID(userID uint) (models.User, bool, error)
}

type AuthService struct {
	verifier CredentialVerifier
	users    AuthUserRepository

	// loginDelay mimics the network latency of the original client-side
	// simulation. Zero disables it; tests leave it at zero.
	loginDelay time.Duration
}

func NewAuthService(verifier CredentialVerifier, users AuthUserRepository, loginDelay time.Duration) *AuthService {
	return &AuthService{
		verifier:   verifier,
		users:      users,
		loginDelay: loginDelay,
	}
}

// Login verifies the credential pair. Failure reports
// ErrInvalidCredentials and mutates nothing.
func (service *AuthService) Login(email string, password string) (models.User, error) {
	if service.loginDelay > 0 {
		time.Sleep(service.loginDelay)
	}
	return service.verifier.Verify(NormalizeEmail(email), password)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StoredCredentialVerifier verifies against bcrypt hashes in the user store.
type StoredCredentialVerifier struct {
	users AuthUserRepository
}

func NewStoredCredentialVerifier(users AuthUserRepository) *StoredCredentialVerifier {
	return &StoredCredentialVerifier{users: users}
}

func (verifier *StoredCredentialVerifier) Verify(email string, password string) (models.User, error) {
	user, found, err := verifier.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
