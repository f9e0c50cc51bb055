package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// AccountsRepo covers both identity spaces: admin users and site customers.
// Email uniqueness lives in the store; inserts surface it as ErrEmailTaken.
type AccountsRepo struct {
	db *sqlx.DB
}

func NewAccountsRepo(db *sqlx.DB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

// Customers

func (r *AccountsRepo) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	var customer Customer
	err := r.db.GetContext(ctx, &customer, `SELECT * FROM customers WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}
	return &customer, nil
}

func (r *AccountsRepo) CreateCustomer(ctx context.Context, name, email, hashedPassword, phone string) (*Customer, error) {
	var customer Customer
	err := r.db.GetContext(ctx, &customer,
		`INSERT INTO customers (name, email, password, phone)
		 VALUES ($1, $2, $3, $4) RETURNING id, name, email, phone, created_at`,
		name, email, hashedPassword, phone)
	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (r *AccountsRepo) ListCustomers(ctx context.Context) ([]Customer, error) {
	customers := []Customer{}
	err := r.db.SelectContext(ctx, &customers,
		`SELECT id, name, email, phone, created_at FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Admin users

func (r *AccountsRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// CreateUser never selects the password column back; the row struct hides it
// from JSON regardless.
func (r *AccountsRepo) CreateUser(ctx context.Context, name, email, hashedPassword, role string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user,
		`INSERT INTO users (name, email, password, role)
		 VALUES ($1, $2, $3, $4) RETURNING id, name, email, role, created_at`,
		name, email, hashedPassword, role)
	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (r *AccountsRepo) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.SelectContext(ctx, &users,
		`SELECT id, name, email, role, created_at FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *AccountsRepo) DeleteUser(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
