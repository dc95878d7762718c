package userprofile

// Profile is the display record for a pool member.
type Profile struct {
	UserID      string
	DisplayName string
	Email       string
}
