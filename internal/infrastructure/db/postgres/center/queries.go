package center

const (
	SelectCenters = `
		SELECT id, version, name, city, address, created_at, updated_at, deleted
		FROM medical_centers
		WHERE deleted = false
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectCenterByID = `
		SELECT id, version, name, city, address, created_at, updated_at, deleted
		FROM medical_centers
		WHERE id = $1 AND deleted = false
	`
	ExistsCenterByName = `
		SELECT EXISTS (
			SELECT 1 FROM medical_centers
			WHERE name = $1 AND deleted = false AND id <> $2
		)
	`
	ExistsCenterByAddress = `
		SELECT EXISTS (
			SELECT 1 FROM medical_centers
			WHERE address = $1 AND deleted = false AND id <> $2
		)
	`
	InsertCenter = `
		INSERT INTO medical_centers (name, city, address)
		VALUES ($1, $2, $3)
		RETURNING id, version, name, city, address, created_at, updated_at, deleted
	`
	UpdateCenterCAS = `
		UPDATE medical_centers
		SET name = $1,
		    city = $2,
		    address = $3,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $4 AND version = $5 AND deleted = false
		RETURNING id, version, name, city, address, created_at, updated_at, deleted
	`
	SelectCenterForUpdate = `
		SELECT id, version, name, city, address, created_at, updated_at, deleted
		FROM medical_centers
		WHERE id = $1 AND deleted = false
		FOR UPDATE
	`
	SoftDeleteCenterByID = `
		UPDATE medical_centers
		SET deleted = true,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $1 AND deleted = false
	`
)
