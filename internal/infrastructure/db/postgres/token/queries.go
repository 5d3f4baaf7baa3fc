package token

const (
	InsertToken = `
		INSERT INTO verification_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, token, used, expires_at, created_at
	`
	SelectByToken = `
		SELECT id, user_id, token, used, expires_at, created_at
		FROM verification_tokens
		WHERE token = $1
	`
	// MarkTokenUsed is conditional on used=false so that exactly one caller
	// can ever consume a given token.
	MarkTokenUsed = `
		UPDATE verification_tokens
		SET used = true
		WHERE id = $1 AND used = false
	`
)
