package user

// Details is the session-singleton user profile. The address doubles as the
// delivery-address default at checkout.
type Details struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Identity is what the external identity provider hands back after a
// successful sign-in.
type Identity struct {
	Name  string
	Email string
}
