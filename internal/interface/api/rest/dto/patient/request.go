package patient

type Request struct {
	DNI       string `json:"dni"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Gender    string `json:"gender"`
	CenterID  uint64 `json:"center_id"`
	Version   int64  `json:"version"`
}
