// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the form body for the POST /auth/register endpoint.
// No binding tags: the usecase validates the fields in a fixed order so
// the first failure decides the flash message.
type RegisterReq struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"passwordConfirm"`
	Age             string `form:"age"`
}
