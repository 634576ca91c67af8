package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/events"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/validate"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var knownRoles = map[models.Role]bool{
	models.RoleSindico:  true,
	models.RolePortaria: true,
	models.RoleMorador:  true,
}

// UserService manages the people registry. Every write normalizes the full
// name and stores CPF and phone display-formatted after validation.
type UserService struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
}

func NewUserService(repo Repository, producer EventProducer, logger *zap.Logger) *UserService {
	return &UserService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("user_service"),
	}
}

// canAdminUser: staff administer anyone, managers their own condominium.
func canAdminUser(p access.Principal, condominioID *uuid.UUID) bool {
	if p.Staff {
		return true
	}
	return p.IsSindico() && p.SameTenant(condominioID)
}

func normalizeUser(user *models.User) error {
	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	if user.Username == "" {
		return fmt.Errorf("%w: username is required", e.ErrInvalidInput)
	}
	if strings.TrimSpace(user.FullName) == "" {
		return fmt.Errorf("%w: full name is required", e.ErrInvalidInput)
	}
	user.FullName = models.NormalizeFullName(user.FullName)

	cpf, err := validate.CPF(user.CPF)
	if err != nil {
		return err
	}
	user.CPF = validate.FormatCPF(cpf)

	phone, err := validate.Phone(user.Phone)
	if err != nil {
		return err
	}
	user.Phone = validate.FormatPhone(phone)

	for _, r := range user.Roles {
		if !knownRoles[r] {
			return fmt.Errorf("%w: unknown role %q", e.ErrInvalidInput, r)
		}
	}
	return nil
}

// CreateUser registers a user. Managers create users inside their own
// condominium only; the created account starts in first-access state.
func (s *UserService) CreateUser(ctx context.Context, p access.Principal, user *models.User, password string) (*models.User, error) {
	if !p.Staff && !p.IsSindico() {
		return nil, e.ErrForbidden
	}
	if err := normalizeUser(user); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", e.ErrInvalidInput)
	}
	if !p.Staff {
		// Managers cannot plant users in another tenant.
		user.CondominioID = p.CondominioID
		user.Staff = false
	}

	taken, err := s.repo.UsernameTaken(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: username already in use", e.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.ID = uuid.New()
	user.PasswordHash = string(hash)
	user.FirstAccess = true
	user.IsActive = true
	user.CreatedByID = &p.UserID

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	go func() {
		s.producer.Produce(events.UserCreated, user.ID, user)
	}()
	return user, nil
}

// GetUser returns a user visible to the caller: self, same-tenant for
// managers, anyone for staff.
func (s *UserService) GetUser(ctx context.Context, p access.Principal, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if id != p.UserID && !canAdminUser(p, user.CondominioID) {
		return nil, e.ErrForbidden
	}
	return user, nil
}

// UpdateUser applies a partial update, re-validating any document field it
// touches.
func (s *UserService) UpdateUser(ctx context.Context, p access.Principal, update *models.UserUpdate) (*models.User, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid user ID", e.ErrInvalidInput)
	}
	existing, err := s.repo.GetUser(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if update.ID != p.UserID && !canAdminUser(p, existing.CondominioID) {
		return nil, e.ErrForbidden
	}
	// Role and activation changes stay with administrators.
	if (update.Roles != nil || update.IsActive != nil) && !canAdminUser(p, existing.CondominioID) {
		return nil, e.ErrForbidden
	}

	if update.FullName != nil {
		if strings.TrimSpace(*update.FullName) == "" {
			return nil, fmt.Errorf("%w: full name is required", e.ErrInvalidInput)
		}
		normalized := models.NormalizeFullName(*update.FullName)
		update.FullName = &normalized
	}
	if update.CPF != nil {
		cpf, err := validate.CPF(*update.CPF)
		if err != nil {
			return nil, err
		}
		formatted := validate.FormatCPF(cpf)
		update.CPF = &formatted
	}
	if update.Phone != nil {
		phone, err := validate.Phone(*update.Phone)
		if err != nil {
			return nil, err
		}
		formatted := validate.FormatPhone(phone)
		update.Phone = &formatted
	}
	if update.Roles != nil {
		for _, r := range *update.Roles {
			if !knownRoles[r] {
				return nil, fmt.Errorf("%w: unknown role %q", e.ErrInvalidInput, r)
			}
		}
	}

	if err := s.repo.UpdateUser(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) || errors.Is(err, e.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.repo.GetUser(ctx, update.ID)
}

// ChangePassword sets a new password and clears the first-access flag.
// Users change their own password; staff may reset anyone's.
func (s *UserService) ChangePassword(ctx context.Context, p access.Principal, id uuid.UUID, newPassword string) error {
	if id != p.UserID && !p.Staff {
		return e.ErrForbidden
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must have at least 8 characters", e.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)
	firstAccess := false
	update := &models.UserUpdate{
		ID:           id,
		PasswordHash: &hashStr,
		FirstAccess:  &firstAccess,
	}
	if err := s.repo.UpdateUser(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// Authenticate verifies a username/password pair and returns the account.
// Wrong credentials and disabled accounts both come back as ErrForbidden so
// the login response does not leak which one it was.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.ErrForbidden
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, e.ErrForbidden
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, e.ErrForbidden
	}
	return user, nil
}

// DeleteUser removes an account (soft delete).
func (s *UserService) DeleteUser(ctx context.Context, p access.Principal, id uuid.UUID) error {
	existing, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user for deletion: %w", err)
	}
	if !canAdminUser(p, existing.CondominioID) {
		return e.ErrForbidden
	}
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ListUsers returns the users visible to the caller's tenant.
func (s *UserService) ListUsers(ctx context.Context, p access.Principal, search string, pg db.Pagination) ([]models.User, db.PageInfo, error) {
	return s.repo.ListUsers(ctx, p.ScopeUsers(), search, pg)
}
