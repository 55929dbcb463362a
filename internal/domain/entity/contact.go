package entity

// Contact is a person in a user's address book. It is visible only to its owner.
type Contact struct {
	ID        string
	Username  string // Owner of the contact.
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// BelongsTo reports whether the contact is owned by the given user.
func (c *Contact) BelongsTo(user *User) bool {
	return user != nil && c.Username == user.Username
}
