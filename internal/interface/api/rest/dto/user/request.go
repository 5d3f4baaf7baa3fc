package user

type Request struct {
	Username  string   `json:"username"` // DNI
	Password  string   `json:"password,omitempty"`
	Email     string   `json:"email"`
	Gender    string   `json:"gender"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	CenterID  uint64   `json:"center_id"`
	Roles     []string `json:"roles"`
}
