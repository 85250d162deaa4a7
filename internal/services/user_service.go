package services

import (
	"fmt"
	"time"

	"boutique/internal/models"
	"boutique/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AccountUpdate carries the optional fields of a partial account update.
// Nil fields are left untouched. Role is only honored on the admin path.
type AccountUpdate struct {
	Password    *string         `json:"password"`
	FirstName   *string         `json:"firstName"`
	LastName    *string         `json:"lastName"`
	BirthDate   *time.Time      `json:"birthDate"`
	PhoneNumber *string         `json:"phoneNumber"`
	Address     *models.Address `json:"address"`
	Role        *string         `json:"role"`
}

// UserService handles profile self-service and admin account management.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetProfile returns the account's public fields.
func (s *UserService) GetProfile(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	public := user.Sanitized()
	return &public, nil
}

// UpdateProfile applies a partial update to the caller's own account. A
// new password is rehashed before storage. The role field is ignored here;
// a caller can never elevate themselves.
func (s *UserService) UpdateProfile(id string, update AccountUpdate) (*models.User, error) {
	update.Role = nil
	return s.applyUpdate(id, update)
}

// DeleteAccount hard-deletes an account.
func (s *UserService) DeleteAccount(id string) error {
	return s.userRepo.Delete(id)
}

// ListAccounts returns every account, passwords stripped. Admin only.
func (s *UserService) ListAccounts() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	return sanitized, nil
}

// UpdateAccount applies a partial update to any account, including its
// role. This is the only path through which an account can become admin.
func (s *UserService) UpdateAccount(id string, update AccountUpdate) (*models.User, error) {
	return s.applyUpdate(id, update)
}

func (s *UserService) applyUpdate(id string, update AccountUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Password != nil && *update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.BirthDate != nil {
		user.BirthDate = update.BirthDate
	}
	if update.PhoneNumber != nil {
		user.PhoneNumber = *update.PhoneNumber
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.Role != nil {
		if *update.Role != models.RoleUser && *update.Role != models.RoleAdmin {
			return nil, fmt.Errorf("invalid role: %s", *update.Role)
		}
		user.Role = *update.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	public := user.Sanitized()
	return &public, nil
}
