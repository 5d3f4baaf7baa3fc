package patient

const (
	SelectPatients = `
		SELECT id, version, dni, first_name, last_name, birth_date, gender, center_id, created_at, updated_at, deleted
		FROM patients
		WHERE deleted = false
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectPatientByID = `
		SELECT id, version, dni, first_name, last_name, birth_date, gender, center_id, created_at, updated_at, deleted
		FROM patients
		WHERE id = $1 AND deleted = false
	`
	ExistsPatientByDNI = `
		SELECT EXISTS (
			SELECT 1 FROM patients
			WHERE dni = $1 AND deleted = false AND id <> $2
		)
	`
	ExistsActivePatientInCenter = `
		SELECT EXISTS (
			SELECT 1 FROM patients
			WHERE center_id = $1 AND deleted = false
		)
	`
	InsertPatient = `
		INSERT INTO patients (dni, first_name, last_name, birth_date, gender, center_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, version, dni, first_name, last_name, birth_date, gender, center_id, created_at, updated_at, deleted
	`
	UpdatePatientCAS = `
		UPDATE patients
		SET first_name = $1,
		    last_name = $2,
		    birth_date = $3,
		    gender = $4,
		    center_id = $5,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $6 AND version = $7 AND deleted = false
		RETURNING id, version, dni, first_name, last_name, birth_date, gender, center_id, created_at, updated_at, deleted
	`
	SelectPatientForUpdate = `
		SELECT id, version, dni, first_name, last_name, birth_date, gender, center_id, created_at, updated_at, deleted
		FROM patients
		WHERE id = $1 AND deleted = false
		FOR UPDATE
	`
	SoftDeletePatientByID = `
		UPDATE patients
		SET deleted = true,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $1 AND deleted = false
	`
)
