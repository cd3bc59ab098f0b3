package domain

// User represents a registered account. Email is the unique identifier and
// is compared case-sensitively, exactly as stored.
type User struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	CPF        string `json:"cpf,omitempty"`
	Goal       string `json:"goal,omitempty"`
	SocialName string `json:"socialName,omitempty"`
}

// Greeting returns the name the user is addressed by, preferring the social
// name when one is set.
func (u User) Greeting() string {
	if u.SocialName != "" {
		return u.SocialName
	}
	return u.Name
}

// Sanitized returns a copy of the user without the password, safe to hand
// past the service boundary.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
