package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/wildwave/safaris/internal/auth"
	"github.com/wildwave/safaris/internal/models"
)

// ErrInvalidCredentials deliberately covers both "no such account" and "wrong
// password" so login responses cannot be used for account enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

const bcryptCost = 12

// AccountService handles signup, login and admin user management for both
// identity spaces.
type AccountService struct {
	accounts *models.AccountsRepo
	codec    *auth.TokenCodec
}

func NewAccountService(accounts *models.AccountsRepo, codec *auth.TokenCodec) *AccountService {
	return &AccountService{accounts: accounts, codec: codec}
}

// SignupCustomer rejects duplicate emails with ErrEmailTaken, stores the new
// customer with a bcrypt hash and issues a customer token.
func (s *AccountService) SignupCustomer(ctx context.Context, in *models.SignupInput) (string, *models.Customer, error) {
	_, err := s.accounts.GetCustomerByEmail(ctx, in.Email)
	if err == nil {
		return "", nil, models.ErrEmailTaken
	}
	if !errors.Is(err, models.ErrNotFound) {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer, err := s.accounts.CreateCustomer(ctx, in.Name, in.Email, string(hashed), in.Phone)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(customer.ID, customer.Email, auth.TypeCustomer, "")
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

func (s *AccountService) LoginCustomer(ctx context.Context, email, password string) (string, *models.Customer, error) {
	customer, err := s.accounts.GetCustomerByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(customer.ID, customer.Email, auth.TypeCustomer, "")
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

// LoginAdmin mirrors LoginCustomer against the users table, embedding the
// admin type and the user's role in the token claim.
func (s *AccountService) LoginAdmin(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.accounts.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Email, auth.TypeAdmin, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AccountService) CreateUser(ctx context.Context, in *models.CreateUserInput) (*models.User, error) {
	role := in.Role
	if role == "" {
		role = models.DefaultUserRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.accounts.CreateUser(ctx, in.Name, in.Email, string(hashed), role)
}

func (s *AccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.accounts.ListUsers(ctx)
}

func (s *AccountService) DeleteUser(ctx context.Context, id int) error {
	return s.accounts.DeleteUser(ctx, id)
}

func (s *AccountService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.accounts.ListCustomers(ctx)
}
