package trackingnumber

// RegistrationData carries the identifier of a stored tracking number.
type RegistrationData struct {
	// Hash is the SHA-256 hex digest the number is stored under.
	Hash string `json:"hash"`
}

// RegistrationResponse is returned after a tracking number is registered.
type RegistrationResponse struct {
	Result bool             `json:"result"`
	Data   RegistrationData `json:"data"`
}

// QueryResponse reports whether a tracking number is registered.
type QueryResponse struct {
	Result bool `json:"result"`
}
