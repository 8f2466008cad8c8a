package handler

// Response messages are external contract; the web client and the API tests
// match on the exact strings, including the trailing ".." on user-not-found.
const (
	errInternalServer = "Internal server error"

	msgLoginEmailInvalid    = "Email is required or malformed."
	msgRegisterEmailInvalid = "Email is missing or malformed."
	msgPasswordRequired     = "Password is required."
	msgUserWasNotFound      = "User was not found.."
	msgPasswordInvalid      = "Password was invalid."
	msgUserAlreadyExists    = "User already exists."
	msgAuthenticated        = "Authenticated."

	msgUserIDParamRequired = "User id param required and not found."
	msgUserNotFound        = "User not found."

	msgCaptionRequired  = "Caption is required or malformed."
	msgFileURLRequired  = "File url is required."
	msgFeedItemNotFound = "Feed item not found."
)
