package repository

import (
	"database/sql"
	"fmt"

	"github.com/realtyaudit/capital-service/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateLead stores a captured lead
func (r *Repository) CreateLead(lead *models.Lead) error {
	query := `
		INSERT INTO calculator.leads (name, phone, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, lead.Name, lead.Phone).
		Scan(&lead.ID, &lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// ListLeads retrieves captured leads, newest first
func (r *Repository) ListLeads() ([]models.Lead, error) {
	query := `
		SELECT id, name, phone, created_at
		FROM calculator.leads
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var lead models.Lead
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Phone, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}
	return leads, nil
}
