package specialty

const (
	SelectSpecialties = `
		SELECT id, version, name, description, created_at, updated_at, deleted
		FROM specialties
		WHERE deleted = false
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectSpecialtyByID = `
		SELECT id, version, name, description, created_at, updated_at, deleted
		FROM specialties
		WHERE id = $1 AND deleted = false
	`
	ExistsSpecialtyByName = `
		SELECT EXISTS (
			SELECT 1 FROM specialties
			WHERE name = $1 AND deleted = false AND id <> $2
		)
	`
	InsertSpecialty = `
		INSERT INTO specialties (name, description)
		VALUES ($1, $2)
		RETURNING id, version, name, description, created_at, updated_at, deleted
	`
	UpdateSpecialtyCAS = `
		UPDATE specialties
		SET name = $1,
		    description = $2,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $3 AND version = $4 AND deleted = false
		RETURNING id, version, name, description, created_at, updated_at, deleted
	`
	SelectSpecialtyForUpdate = `
		SELECT id, version, name, description, created_at, updated_at, deleted
		FROM specialties
		WHERE id = $1 AND deleted = false
		FOR UPDATE
	`
	SoftDeleteSpecialtyByID = `
		UPDATE specialties
		SET deleted = true,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $1 AND deleted = false
	`
)
