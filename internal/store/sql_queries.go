package store

import sq "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (email, password)
    VALUES ($1, $2)
    RETURNING id;`

	updateActivated = `UPDATE users
    SET activated = TRUE
    WHERE id = $1;`

	saveActivationCode = `INSERT INTO activation_code (user_id, code)
    VALUES ($1, $2)
    RETURNING id;`
)

// psql builds SELECT queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// findUserByEmailQuery selects the full account row for one canonical email.
func findUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select("id", "email", "password", "activated", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

// newestCodeQuery selects the issuance timestamp of the most recent
// activation code row matching (userID, code). The freshness window is
// applied by the caller so that a matching-but-stale row can be reported
// as expired rather than absent.
func newestCodeQuery(userID int64, code string) (string, []any, error) {
	return psql.
		Select("created_at").
		From("activation_code").
		Where(sq.Eq{"user_id": userID, "code": code}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
}
