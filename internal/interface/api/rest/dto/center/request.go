package center

type Request struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	// Version is the copy the client read; updates are rejected when it is
	// stale.
	Version int64 `json:"version"`
}
