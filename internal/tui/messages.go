package tui

// NavigateTo switches the auth flow to another page. An optional
// payload message is delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult reports the outcome of an async login or register command.
// A nil error means the session is authenticated (but still locked).
type AuthResult struct {
	Err error
}

// UnlockResult reports the outcome of an async unlock or encryption
// setup command. A nil error means the session is unlocked and the auth
// flow is complete.
type UnlockResult struct {
	Err error
}
