// Package session holds the admin-mode flag and its toggle logic.
package session

import "errors"

// Demo credentials, compared in plain text against user input. This is NOT a
// security boundary: no hashing, no server round-trip, no rate limiting.
// Insecure by design, for the demo UI only.
const (
	demoUsername = "admin"
	demoPassword = "password"
)

var ErrBadCredentials = errors.New("invalid username or password")

// Gate is the process-wide LoggedOut/LoggedIn flag. Zero value is LoggedOut.
type Gate struct {
	loggedIn bool
}

func NewGate() *Gate {
	return &Gate{}
}

// Login flips the gate to LoggedIn when the pair matches the fixed demo
// credentials. On mismatch the gate is left untouched and ErrBadCredentials
// is returned; the caller is expected to clear the submitted fields either
// way.
func (g *Gate) Login(username, password string) error {
	if username != demoUsername || password != demoPassword {
		return ErrBadCredentials
	}
	g.loggedIn = true
	return nil
}

// Logout returns the gate to its initial LoggedOut state.
func (g *Gate) Logout() {
	g.loggedIn = false
}

func (g *Gate) LoggedIn() bool {
	return g.loggedIn
}
