package postgres

// PostgreSQL error codes checked by the repositories
const (
	PgErrCodeUniqueViolation = "23505"
)

// Default query limits
const (
	DefaultLeaderboardLimit = 50
)
