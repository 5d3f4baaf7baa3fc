package user

type (
	// Response doubles as the wire format the peer services decode, so the
	// field set must stay in sync with their client.
	Response struct {
		ID        uint64   `json:"id"`
		Version   int64    `json:"version"`
		Username  string   `json:"username"`
		Email     string   `json:"email"`
		Gender    string   `json:"gender"`
		FirstName string   `json:"first_name"`
		LastName  string   `json:"last_name"`
		CenterID  uint64   `json:"center_id"`
		Roles     []string `json:"roles"`
		Enabled   bool     `json:"enabled"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}
)
