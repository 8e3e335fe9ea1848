package user

// Error messages
const (
	ErrMsgUsernameRequired = "username is required"
)
