package doctor

type (
	// RegisterRequest creates the identity-service user and the local
	// doctor row in one call.
	RegisterRequest struct {
		Username    string  `json:"username"`
		Password    string  `json:"password"`
		Email       string  `json:"email"`
		Gender      string  `json:"gender"`
		FirstName   string  `json:"first_name"`
		LastName    string  `json:"last_name"`
		CenterID    uint64  `json:"center_id"`
		SpecialtyID *uint64 `json:"specialty_id"`
	}
	UpdateRequest struct {
		SpecialtyID *uint64 `json:"specialty_id"`
		Version     int64   `json:"version"`
	}
)
