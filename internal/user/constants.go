package user

// Log messages
const (
	LogMsgSignUpCalled   = "SignUp called"
	LogMsgSignInCalled   = "SignIn called"
	LogMsgUserRegistered = "User registered"
	LogMsgUserSignedIn   = "User signed in"
)

// Error message formats
const (
	ErrMsgLookupUserFailed = "failed to look up user: %w"
)
