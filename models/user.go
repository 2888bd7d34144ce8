package models

// User represents a registered account held by the in-memory store.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// Assigned sequentially by the store starting at 1 and never reused.
	// It is not exposed via JSON.
	ID int64 `json:"-"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Email is the unique user identifier used during authentication.
	// Matching is case-sensitive; no normalization is applied.
	Email string `json:"email"`

	// Password is the user's password as supplied at registration.
	// It is accepted from request bodies but never serialized back;
	// responses use [Profile] instead.
	Password string `json:"password,omitempty"`

	// Bio is optional free text. Defaults to the empty string when
	// omitted at registration.
	Bio string `json:"bio"`

	// DOB is the date of birth in YYYY-MM-DD form.
	DOB string `json:"dob"`
}

// Profile is the public projection of a User returned by the read
// endpoints. It deliberately omits ID and Password.
type Profile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	DOB      string `json:"dob"`
}

// Profile returns the public view of the user.
func (u User) Profile() Profile {
	return Profile{
		FullName: u.FullName,
		Email:    u.Email,
		Bio:      u.Bio,
		DOB:      u.DOB,
	}
}
