package specialty

type Request struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Version     int64   `json:"version"`
}
