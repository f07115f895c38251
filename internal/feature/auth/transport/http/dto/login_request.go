package dto

// LoginReq represents the request body for the /auth/login endpoint.
// EmailOrUsername carries either credential; the directory decides which
// one matched.
type LoginReq struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}
