package entity

// Address is a postal address attached to exactly one contact.
type Address struct {
	ID         string
	ContactID  string
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}
