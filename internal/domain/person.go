// Package domain contains the core data types for the People API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, validation, handler).
package domain

// Person is a single stored person record.
// ID is assigned by the store on Create; it is zero on a Person that has not
// been persisted yet.
//
// The validate tags are read by the validation package. Field order matters:
// violations are reported in declaration order (name, age, email).
// Age is capped at the int4 range so every store can hold it.
type Person struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required,min=2"`
	Age   int    `json:"age" validate:"gt=0,lte=2147483647"`
	Email string `json:"email" validate:"required,email"`
}
