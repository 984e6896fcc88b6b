package model

// UserProfile mirrors the profiles table. Skills is kept as the
// comma-separated string the mobile client edits.
type UserProfile struct {
	ID        FlexID `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Skills    string `json:"skills"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
