package service

// Validator checks request structs against their declared constraints.
type Validator interface {
	// Validate returns a validation AppError describing the first violated constraints, or nil.
	Validate(input any) error
}
