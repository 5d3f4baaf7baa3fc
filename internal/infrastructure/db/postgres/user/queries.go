package user

const (
	SelectUsers = `
		SELECT id, version, username, password_hash, email, gender, first_name, last_name, center_id, roles, created_at, updated_at, enabled
		FROM users
		WHERE enabled = true
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectUserByID = `
		SELECT id, version, username, password_hash, email, gender, first_name, last_name, center_id, roles, created_at, updated_at, enabled
		FROM users
		WHERE id = $1 AND enabled = true
	`
	// SelectUserByIDAnyState bypasses the enabled filter; it backs the
	// includeDisabled read and is a distinct, explicitly named query.
	SelectUserByIDAnyState = `
		SELECT id, version, username, password_hash, email, gender, first_name, last_name, center_id, roles, created_at, updated_at, enabled
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT id, version, username, password_hash, email, gender, first_name, last_name, center_id, roles, created_at, updated_at, enabled
		FROM users
		WHERE username = $1 AND enabled = true
	`
	SelectUserByEmail = `
		SELECT id, version, username, password_hash, email, gender, first_name, last_name, center_id, roles, created_at, updated_at, enabled
		FROM users
		WHERE email = $1 AND enabled = true
	`
	ExistsUserByUsername = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE username = $1 AND enabled = true AND id <> $2
		)
	`
	ExistsUserByEmail = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE email = $1 AND enabled = true AND id <> $2
		)
	`
	ExistsEnabledUserInCenter = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE center_id = $1 AND enabled = true
		)
	`
	InsertUser = `
		INSERT INTO users (username, password_hash, email, gender, first_name, last_name, center_id, roles)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, version, username, password_hash, email, gender, first_name, last_name, center_id, roles, created_at, updated_at, enabled
	`
	UpdateUserPassword = `
		UPDATE users
		SET password_hash = $1,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $2 AND enabled = true
	`
	// HardDeleteUserByID is a native destructive bypass of the disable
	// strategy, used only for saga compensation on registration failure.
	HardDeleteUserByID = `
		DELETE FROM users WHERE id = $1
	`
	SelectUserForUpdate = `
		SELECT id, version, username, password_hash, email, gender, first_name, last_name, center_id, roles, created_at, updated_at, enabled
		FROM users
		WHERE id = $1 AND enabled = true
		FOR UPDATE
	`
	UpdateUserByID = `
		UPDATE users
		SET email = $1,
		    gender = $2,
		    first_name = $3,
		    last_name = $4,
		    center_id = $5,
		    roles = $6,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $7 AND enabled = true
		RETURNING id, version, username, password_hash, email, gender, first_name, last_name, center_id, roles, created_at, updated_at, enabled
	`
	DisableUserByID = `
		UPDATE users
		SET enabled = false,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $1 AND enabled = true
	`
)
