package dto

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput names the session to tear down. The account is taken from the
// authenticated principal; a body-supplied account_id is only accepted when it
// matches.
type LogoutInput struct {
	AccountID    string `json:"account_id"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Principal is the identity attached to a request once its bearer token has
// passed the revocation and signature checks.
type Principal struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
}
