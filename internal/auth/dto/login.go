package dto

type LoginInput struct {
	AccountID   string `json:"account_id" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Force       bool   `json:"force"`
	IPAddress   string `json:"-"`
	CountryCode string `json:"-"`
	UserAgent   string `json:"-"`
}

// LoginOutcome is the tagged result of a login attempt. Every attempt ends in
// exactly one of these.
type LoginOutcome string

const (
	OutcomeSuccess            LoginOutcome = "SUCCESS"
	OutcomeDuplicateLogin     LoginOutcome = "DUPLICATE_LOGIN"
	OutcomeInvalidCredentials LoginOutcome = "INVALID_CREDENTIALS"
	OutcomeBlocked            LoginOutcome = "BLOCKED"
	OutcomeDormantHold        LoginOutcome = "DORMANT_HOLD"
	OutcomeStepUpRequired     LoginOutcome = "STEP_UP_REQUIRED"
)

type LoginResult struct {
	Outcome           LoginOutcome `json:"outcome"`
	AccessToken       string       `json:"access_token,omitempty"`
	RefreshToken      string       `json:"refresh_token,omitempty"`
	ExpiresIn         int64        `json:"expires_in,omitempty"`
	ProfileIncomplete bool         `json:"profile_incomplete,omitempty"`
}
