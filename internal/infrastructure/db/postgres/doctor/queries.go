package doctor

const (
	SelectDoctors = `
		SELECT id, version, user_id, specialty_id, created_at, updated_at, deleted
		FROM doctors
		WHERE deleted = false
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectDoctorByID = `
		SELECT id, version, user_id, specialty_id, created_at, updated_at, deleted
		FROM doctors
		WHERE id = $1 AND deleted = false
	`
	ExistsDoctorByUserID = `
		SELECT EXISTS (
			SELECT 1 FROM doctors
			WHERE user_id = $1 AND deleted = false
		)
	`
	ExistsDoctorBySpecialty = `
		SELECT EXISTS (
			SELECT 1 FROM doctors
			WHERE specialty_id = $1 AND deleted = false
		)
	`
	InsertDoctor = `
		INSERT INTO doctors (user_id, specialty_id)
		VALUES ($1, $2)
		RETURNING id, version, user_id, specialty_id, created_at, updated_at, deleted
	`
	UpdateDoctorCAS = `
		UPDATE doctors
		SET specialty_id = $1,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $2 AND version = $3 AND deleted = false
		RETURNING id, version, user_id, specialty_id, created_at, updated_at, deleted
	`
	SelectDoctorForUpdate = `
		SELECT id, version, user_id, specialty_id, created_at, updated_at, deleted
		FROM doctors
		WHERE id = $1 AND deleted = false
		FOR UPDATE
	`
	SoftDeleteDoctorByID = `
		UPDATE doctors
		SET deleted = true,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $1 AND deleted = false
	`
)
