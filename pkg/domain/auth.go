package domain

// LoginRequest is the body of the login call. Code and UUID identify the
// captcha the user answered.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
	UUID     string `json:"uuid"`
}

// LoginData is the payload of a successful login.
type LoginData struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
