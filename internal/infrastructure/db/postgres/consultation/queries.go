package consultation

const (
	SelectConsultations = `
		SELECT id, version, patient_id, doctor_id, center_id, date, diagnosis, treatment, notes, created_at, updated_at, deleted
		FROM medical_consultations
		WHERE deleted = false
		ORDER BY id
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectConsultationByID = `
		SELECT id, version, patient_id, doctor_id, center_id, date, diagnosis, treatment, notes, created_at, updated_at, deleted
		FROM medical_consultations
		WHERE id = $1 AND deleted = false
	`
	ExistsFutureAppointmentForDoctor = `
		SELECT EXISTS (
			SELECT 1 FROM medical_consultations
			WHERE doctor_id = $1 AND date > $2 AND deleted = false
		)
	`
	ExistsActiveAppointmentInCenter = `
		SELECT EXISTS (
			SELECT 1 FROM medical_consultations
			WHERE center_id = $1 AND deleted = false
		)
	`
	InsertConsultation = `
		INSERT INTO medical_consultations (patient_id, doctor_id, center_id, date, diagnosis, treatment, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, version, patient_id, doctor_id, center_id, date, diagnosis, treatment, notes, created_at, updated_at, deleted
	`
	UpdateConsultationCAS = `
		UPDATE medical_consultations
		SET date = $1,
		    diagnosis = $2,
		    treatment = $3,
		    notes = $4,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $5 AND version = $6 AND deleted = false
		RETURNING id, version, patient_id, doctor_id, center_id, date, diagnosis, treatment, notes, created_at, updated_at, deleted
	`
	SelectConsultationForUpdate = `
		SELECT id, version, patient_id, doctor_id, center_id, date, diagnosis, treatment, notes, created_at, updated_at, deleted
		FROM medical_consultations
		WHERE id = $1 AND deleted = false
		FOR UPDATE
	`
	SoftDeleteConsultationByID = `
		UPDATE medical_consultations
		SET deleted = true,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $1 AND deleted = false
	`
)
