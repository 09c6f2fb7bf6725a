package service

import (
	"context"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/repository"
)

// UserService handles account business logic.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by their unique email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// Create registers a new account. The caller supplies an already-hashed
// password; duplicate emails surface as repository.ErrDuplicateEmail.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	if !u.Role.Valid() {
		u.Role = model.RoleStudent
	}
	return s.userRepo.Create(ctx, u)
}

// List retrieves users with pagination and an optional role filter.
func (s *UserService) List(ctx context.Context, role *model.Role, limit, offset int) ([]model.User, int, error) {
	return s.userRepo.ListPaginated(ctx, role, limit, offset)
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.userRepo.Delete(ctx, id)
}

// CountByRole returns account counts per role for the admin dashboard.
func (s *UserService) CountByRole(ctx context.Context) (map[model.Role]int, error) {
	return s.userRepo.CountByRole(ctx)
}
