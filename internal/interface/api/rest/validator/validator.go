package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"hospital-manager-api/internal/interface/api/rest/dto/auth"
	"hospital-manager-api/internal/interface/api/rest/dto/center"
	"hospital-manager-api/internal/interface/api/rest/dto/consultation"
	"hospital-manager-api/internal/interface/api/rest/dto/doctor"
	"hospital-manager-api/internal/interface/api/rest/dto/patient"
	"hospital-manager-api/internal/interface/api/rest/dto/specialty"
	"hospital-manager-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var (
	// Spanish DNI: 8 digits plus a control letter
	dniRe = regexp.MustCompile(`^[0-9]{8}[A-Za-z]$`)

	genders = map[string]bool{"M": true, "F": true, "OTHER": true}
	roles   = map[string]bool{"ADMIN": true, "MANAGER": true, "DOCTOR": true, "USER": true}
)

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}

	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("invalid page")
	}

	return p, nil
}

func ParseID(s string) (uint64, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	return id, err == nil && id > 0
}

// normName canonicalizes accented names so equal-looking strings compare
// equal in uniqueness checks.
func normName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

func checkName(errs map[string]string, field, value string) string {
	value = normName(value)
	if value == "" {
		errs[field] = field + " is required"
	} else if l := utf8.RuneCountInString(value); l < 2 || l > 64 {
		errs[field] = field + " length must be 2-64 characters"
	} else if !isHumanName(value) {
		errs[field] = "allowed characters: letters, space, '-', '''"
	}

	return value
}

func checkEmail(errs map[string]string, value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(value); err != nil {
		errs["email"] = "invalid email format"
	}

	return value
}

func checkPassword(errs map[string]string, value string) {
	if strings.TrimSpace(value) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(value); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}
}

func checkDNI(errs map[string]string, field, value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		errs[field] = field + " is required"
	} else if !dniRe.MatchString(value) {
		errs[field] = "must be a DNI (8 digits and a letter)"
	}

	return value
}

func checkGender(errs map[string]string, value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		errs["gender"] = "gender is required"
	} else if !genders[value] {
		errs["gender"] = "allowed values: M, F, OTHER"
	}

	return value
}

func done(errs map[string]string) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateCenter(r *center.Request) map[string]string {
	errs := make(map[string]string)

	r.Name = normName(r.Name)
	r.City = normName(r.City)
	r.Address = norm.NFC.String(strings.TrimSpace(r.Address))

	if r.Name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(r.Name); l < 2 || l > 128 {
		errs["name"] = "name length must be 2-128 characters"
	}
	if r.City == "" {
		errs["city"] = "city is required"
	}
	if r.Address == "" {
		errs["address"] = "address is required"
	} else if utf8.RuneCountInString(r.Address) > 256 {
		errs["address"] = "address length must be at most 256 characters"
	}

	return done(errs)
}

func ValidateSpecialty(r *specialty.Request) map[string]string {
	errs := make(map[string]string)

	r.Name = normName(r.Name)
	if r.Name == "" {
		errs["name"] = "name is required"
	} else if l := utf8.RuneCountInString(r.Name); l < 2 || l > 128 {
		errs["name"] = "name length must be 2-128 characters"
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > 512 {
		errs["description"] = "description length must be at most 512 characters"
	}

	return done(errs)
}

func ValidateRegisterDoctor(r *doctor.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	r.Username = checkDNI(errs, "username", r.Username)
	checkPassword(errs, r.Password)
	r.Email = checkEmail(errs, r.Email)
	r.Gender = checkGender(errs, r.Gender)
	r.FirstName = checkName(errs, "first_name", r.FirstName)
	r.LastName = checkName(errs, "last_name", r.LastName)
	if r.CenterID == 0 {
		errs["center_id"] = "center_id is required"
	}

	return done(errs)
}

func ValidateUser(r *user.Request, requirePassword bool) map[string]string {
	errs := make(map[string]string)

	r.Username = checkDNI(errs, "username", r.Username)
	if requirePassword {
		checkPassword(errs, r.Password)
	}
	r.Email = checkEmail(errs, r.Email)
	r.Gender = checkGender(errs, r.Gender)
	r.FirstName = checkName(errs, "first_name", r.FirstName)
	r.LastName = checkName(errs, "last_name", r.LastName)
	if r.CenterID == 0 {
		errs["center_id"] = "center_id is required"
	}
	for _, role := range r.Roles {
		if !roles[role] {
			errs["roles"] = "allowed values: ADMIN, MANAGER, DOCTOR, USER"
			break
		}
	}

	return done(errs)
}

func ValidateLogin(r *auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	r.Username = strings.ToUpper(strings.TrimSpace(r.Username))
	if r.Username == "" {
		errs["username"] = "username is required"
	}
	if r.Password == "" {
		errs["password"] = "password is required"
	}

	return done(errs)
}

func ValidatePasswordReset(r *auth.PasswordResetRequest) map[string]string {
	errs := make(map[string]string)

	r.Email = checkEmail(errs, r.Email)

	return done(errs)
}

func ValidatePasswordResetConfirm(r *auth.PasswordResetConfirmRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Token) == "" {
		errs["token"] = "token is required"
	}
	checkPassword(errs, r.NewPassword)
	if _, ok := errs["password"]; ok {
		errs["new_password"] = errs["password"]
		delete(errs, "password")
	}

	return done(errs)
}

func ValidatePatient(r *patient.Request) map[string]string {
	errs := make(map[string]string)

	r.DNI = checkDNI(errs, "dni", r.DNI)
	r.FirstName = checkName(errs, "first_name", r.FirstName)
	r.LastName = checkName(errs, "last_name", r.LastName)
	r.Gender = checkGender(errs, r.Gender)

	if bdate := strings.TrimSpace(r.BirthDate); bdate == "" {
		errs["birth_date"] = "birth_date is required"
	} else if dob, err := time.Parse("2006-01-02", bdate); err != nil {
		errs["birth_date"] = "must be YYYY-MM-DD"
	} else if dob.After(time.Now().UTC()) {
		errs["birth_date"] = "must be in the past"
	} else {
		r.BirthDate = bdate
	}

	if r.CenterID == 0 {
		errs["center_id"] = "center_id is required"
	}

	return done(errs)
}

func ValidateConsultation(r *consultation.Request) map[string]string {
	errs := make(map[string]string)

	if r.PatientID == 0 {
		errs["patient_id"] = "patient_id is required"
	}
	if r.DoctorID == 0 {
		errs["doctor_id"] = "doctor_id is required"
	}
	if r.CenterID == 0 {
		errs["center_id"] = "center_id is required"
	}
	if r.Date.IsZero() {
		errs["date"] = "date is required"
	}
	if utf8.RuneCountInString(r.Diagnosis) > 2048 {
		errs["diagnosis"] = "diagnosis length must be at most 2048 characters"
	}

	return done(errs)
}
