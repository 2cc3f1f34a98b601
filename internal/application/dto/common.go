package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Mensajes de las respuestas "blandas" (sin error) del API.
const (
	MsgRegistered     = "Registered Successfully!"
	MsgLoggedIn       = "Login Successfully!"
	MsgLoggedOut      = "Logged out!"
	MsgAccountUpdated = "Account has been updated!"
	MsgAccountDeleted = "Account is deleted!"
	MsgAccountMissing = "Account is not found!"
	MsgUserUpdated    = "User has been updated!"
	MsgUserDeleted    = "User is deleted!"
	MsgUserMissing    = "User is not found!"
)
