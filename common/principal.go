package common

// UserDetails is implemented by structured principals that carry a username.
type UserDetails interface {
	Username() string
}

// Principal is the authenticated caller. It holds a UserDetails, a plain
// string username, or whatever the authentication source put there.
type Principal any

// User is the minimal UserDetails. Granted authorities live on
// Authentication, not on the principal.
type User struct {
	Name string
}

func (u User) Username() string { return u.Name }

var _ UserDetails = User{}
