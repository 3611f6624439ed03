package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nvasilev/product-catalog-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
        INSERT INTO users (id, username, email, password_hash, created_at)
        VALUES (:id, :username, :email, :password_hash, :created_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PGRepository) AttachRoles(ctx context.Context, userID string, roles []model.Role) error {
	query := `
        INSERT INTO user_roles (user_id, role_id)
        SELECT $1, id FROM roles WHERE name = $2
    `
	for _, role := range roles {
		res, err := r.DB.ExecContext(ctx, query, userID, string(role))
		if err != nil {
			return fmt.Errorf("attach role %s: %w", role, err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("attach role %s: %w", role, err)
		}
		if rows == 0 {
			return fmt.Errorf("attach role %s: no such role", role)
		}
	}
	return nil
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE email = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}

	roleNames := []string{}
	rolesQuery := `
        SELECT r.name FROM roles r
        JOIN user_roles ur ON ur.role_id = r.id
        WHERE ur.user_id = $1
    `
	if err := r.DB.SelectContext(ctx, &roleNames, rolesQuery, user.ID); err != nil {
		return nil, fmt.Errorf("select user roles: %w", err)
	}

	for _, name := range roleNames {
		if role, ok := model.ParseRole(name); ok {
			user.Roles = append(user.Roles, role)
		}
	}
	return &user, nil
}
