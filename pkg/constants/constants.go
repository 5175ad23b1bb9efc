package constants

const (
	UserID = "user_id"
	Token  = "token"

	// AdminUserID is the JWT subject used for the administrator, who is not
	// backed by a users document.
	AdminUserID = "admin"
)
