package dto

// LoginReq represents the form body for the POST /auth/login endpoint.
// Empty fields fail credential verification like any wrong password;
// the response must not hint at which part was wrong.
type LoginReq struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// SetThemeReq represents the body for the POST /auth/set-theme endpoint.
type SetThemeReq struct {
	Theme string `form:"theme" json:"theme"`
}
