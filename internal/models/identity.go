package models

// Identity names the registrant of an event: either an internal user (by id)
// or an external contact (by email and name). Constructors enforce that
// exactly one mode is set.
type Identity struct {
	userID string
	email  string
	name   string
}

// InternalIdentity identifies a registrant by user id.
func InternalIdentity(userID string) Identity {
	return Identity{userID: userID}
}

// ExternalIdentity identifies a registrant outside the organization.
func ExternalIdentity(email, name string) Identity {
	return Identity{email: email, name: name}
}

// UserID returns the user id and true for internal identities.
func (i Identity) UserID() (string, bool) {
	return i.userID, i.userID != ""
}

// Contact returns the email and name of an external identity.
func (i Identity) Contact() (email, name string) {
	return i.email, i.name
}
