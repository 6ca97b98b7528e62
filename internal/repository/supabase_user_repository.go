package repository

import (
	"fmt"

	"pdfchat-api/internal/domain"
)

const usersTable = "users"

// SupabaseUserRepository implements the domain.UserRepository interface
type SupabaseUserRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabaseUserRepository creates a new Supabase user repository
func NewSupabaseUserRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.UserRepository {
	return &SupabaseUserRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// GetByID retrieves a user record, returning domain.ErrUserNotFound when absent
func (r *SupabaseUserRepository) GetByID(id string) (*domain.User, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return nil, err
	}

	data, _, err := client.From(usersTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}

	return mapToUser(rows[0]), nil
}

// resetUsageFilter matches every row whose counter is not already zero. The
// PATCH needs a filter, and this one keeps the URL a fixed size no matter how
// many users exist.
const resetUsageFilter = "monthly_upload_usage.neq.0,monthly_upload_usage.is.null"

// ResetMonthlyUploadUsage zeroes the counter of every user in one PATCH.
// PostgREST runs it as a single UPDATE statement, so the reset commits for
// every row or for none. The returned count is the number of rows changed.
func (r *SupabaseUserRepository) ResetMonthlyUploadUsage() (int64, error) {
	client, err := dbClient(r.supabaseClient)
	if err != nil {
		return 0, err
	}

	_, count, err := client.From(usersTable).
		Update(map[string]interface{}{"monthly_upload_usage": 0}, "minimal", "exact").
		Or(resetUsageFilter, "").
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly upload usage: %w", err)
	}

	r.logger.Info("Monthly upload usage reset", "users", count)
	return count, nil
}

// mapToUser applies the documented defaults for absent profile fields
func mapToUser(data map[string]interface{}) *domain.User {
	return &domain.User{
		ID:                 getString(data, "id"),
		Email:              getString(data, "email"),
		Name:               getString(data, "name"),
		Role:               getStringOrDefault(data, "role", domain.DefaultUserRole),
		Plan:               getStringOrDefault(data, "plan", domain.DefaultUserPlan),
		MonthlyUploadUsage: getIntOrDefault(data, "monthly_upload_usage", domain.DefaultMonthlyUploadUsage),
		MonthlyUploadLimit: getIntOrDefault(data, "monthly_upload_limit", domain.DefaultMonthlyUploadLimit),
	}
}
