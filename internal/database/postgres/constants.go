package postgres

// pgErrCodeUniqueViolation is the PostgreSQL error code for unique
// constraint violations.
const pgErrCodeUniqueViolation = "23505"
