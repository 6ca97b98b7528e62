package domain

// Defaults applied when a user record omits the field.
const (
	DefaultUserRole           = "user"
	DefaultUserPlan           = "free"
	DefaultMonthlyUploadUsage = 0
	DefaultMonthlyUploadLimit = 5
)

// User is a row of the users table.
type User struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	Plan               string `json:"plan"`
	MonthlyUploadUsage int    `json:"monthly_upload_usage"`
	MonthlyUploadLimit int    `json:"monthly_upload_limit"`
}

type UserRepository interface {
	GetByID(id string) (*User, error)
	// ResetMonthlyUploadUsage zeroes the usage counter of every user in a
	// single write; either all rows change or none do.
	ResetMonthlyUploadUsage() (int64, error)
}

type UsageService interface {
	ResetMonthlyUsage() (int64, error)
}
