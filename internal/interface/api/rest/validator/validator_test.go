package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-manager-api/internal/interface/api/rest/dto/center"
	"hospital-manager-api/internal/interface/api/rest/dto/doctor"
	"hospital-manager-api/internal/interface/api/rest/dto/patient"
)

func TestValidatePage(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := ValidatePage(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "page %q", tt.in)
			continue
		}
		require.NoError(t, err, "page %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		wantID uint64
		wantOK bool
	}{
		{"5", 5, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		id, ok := ParseID(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if ok {
			assert.Equal(t, tt.wantID, id)
		}
	}
}

func TestValidateCenter(t *testing.T) {
	tests := []struct {
		name       string
		req        center.Request
		wantFields []string
	}{
		{
			name: "valid",
			req:  center.Request{Name: "North Clinic", City: "Madrid", Address: "Main St 1"},
		},
		{
			name:       "everything missing",
			req:        center.Request{},
			wantFields: []string{"name", "city", "address"},
		},
		{
			name:       "name too short",
			req:        center.Request{Name: "N", City: "Madrid", Address: "Main St 1"},
			wantFields: []string{"name"},
		},
		{
			name:       "address too long",
			req:        center.Request{Name: "North Clinic", City: "Madrid", Address: strings.Repeat("a", 257)},
			wantFields: []string{"address"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCenter(&tt.req)

			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestValidateCenter_NormalizesInPlace(t *testing.T) {
	req := center.Request{Name: "  North Clinic  ", City: " Madrid ", Address: " Main St 1 "}

	require.Nil(t, ValidateCenter(&req))
	assert.Equal(t, "North Clinic", req.Name)
	assert.Equal(t, "Madrid", req.City)
	assert.Equal(t, "Main St 1", req.Address)
}

func validDoctorRegistration() doctor.RegisterRequest {
	specialtyID := uint64(2)
	return doctor.RegisterRequest{
		Username:    "12345678A",
		Password:    "long-enough-password",
		Email:       "Ana@Example.com",
		Gender:      "f",
		FirstName:   "Ana",
		LastName:    "García-López",
		CenterID:    3,
		SpecialtyID: &specialtyID,
	}
}

func TestValidateRegisterDoctor(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *doctor.RegisterRequest)
		wantField string
	}{
		{"valid", func(r *doctor.RegisterRequest) {}, ""},
		{"username must be a dni", func(r *doctor.RegisterRequest) { r.Username = "nope" }, "username"},
		{"password too short", func(r *doctor.RegisterRequest) { r.Password = "short" }, "password"},
		{"bad email", func(r *doctor.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"unknown gender", func(r *doctor.RegisterRequest) { r.Gender = "X" }, "gender"},
		{"digits in a name", func(r *doctor.RegisterRequest) { r.FirstName = "An4" }, "first_name"},
		{"missing center", func(r *doctor.RegisterRequest) { r.CenterID = 0 }, "center_id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := validDoctorRegistration()
			tt.mutate(&req)

			errs := ValidateRegisterDoctor(&req)

			if tt.wantField == "" {
				require.Nil(t, errs)
				// normalization happened in place
				assert.Equal(t, "ana@example.com", req.Email)
				assert.Equal(t, "F", req.Gender)
				return
			}
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestValidatePatient_BirthDate(t *testing.T) {
	base := patient.Request{
		DNI:       "87654321B",
		FirstName: "Luis",
		LastName:  "Moreno",
		Gender:    "M",
		CenterID:  3,
	}

	tests := []struct {
		name      string
		birthDate string
		wantErr   string
	}{
		{"valid date", "1990-05-20", ""},
		{"missing", "", "birth_date is required"},
		{"wrong layout", "20/05/1990", "must be YYYY-MM-DD"},
		{"in the future", "2999-01-01", "must be in the past"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.BirthDate = tt.birthDate

			errs := ValidatePatient(&req)

			if tt.wantErr == "" {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Equal(t, tt.wantErr, errs["birth_date"])
		})
	}
}

func TestNormName_FoldsEquivalentForms(t *testing.T) {
	// "é" precomposed vs "e" + combining acute
	assert.Equal(t, normName("José"), normName("José"))
}
