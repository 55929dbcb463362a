package entity

// ContactFilter narrows a contact search. Empty fields impose no constraint.
type ContactFilter struct {
	Name  string // Substring of first or last name, case-insensitive.
	Email string // Substring of email, case-insensitive.
	Phone string // Substring of phone.
}

// Pageable addresses one zero-based page of a result set.
type Pageable struct {
	Page int
	Size int
}

// Offset returns the number of rows preceding the page.
// Callers must check PastEnd first; Page*Size may overflow for pages beyond the data.
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// PastEnd reports whether the page starts at or after the last of total rows.
// It compares by division so arbitrarily large pages never overflow.
func (p Pageable) PastEnd(total int64) bool {
	if total <= 0 || p.Size <= 0 {
		return true
	}
	if p.Page <= 0 {
		return false
	}

	return int64(p.Page) > (total-1)/int64(p.Size)
}

// TotalPages returns ceil(total/size), or 0 when there is nothing to page over.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}

	return int((total-1)/int64(size) + 1)
}
