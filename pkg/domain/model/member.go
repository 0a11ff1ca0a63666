package model

// TeamMember identifies one account under a Dropbox Business team
type TeamMember struct {
	ID          string // Team member ID used for member-scoped API calls
	Email       string // Account email
	DisplayName string // Display name, doubles as the output folder name
}
