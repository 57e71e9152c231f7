package models

import "time"

// ProfileFields is the set of user-editable profile attributes accepted by
// PUT /api/profile. Every field is optional on the wire; a field that is
// absent is stored as an empty string, the upsert replaces the whole set.
type ProfileFields struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

// Profile is the owner's view of a stored profile, including the email
// joined from the users table.
type Profile struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Email  string `json:"email,omitempty"`

	ProfileFields

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// Public projects the profile onto the fields that may be shown to
// unauthenticated viewers.
func (p Profile) Public() PublicProfile {
	return PublicProfile(p.ProfileFields)
}

// PublicProfile is the restricted, read-only projection served by
// GET /api/profile/public/{userId}. It has no identifier,
// email or credential fields.
type PublicProfile struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}
