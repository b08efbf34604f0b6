package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrPetNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrEmptyPatch is returned when an update is requested with a patch
	// that carries no fields.
	ErrEmptyPatch = errors.New("patch contains no fields")

	// ErrCampaignCapacity is returned when applying a donation would push
	// a campaign's accumulated total past its maximum.
	ErrCampaignCapacity = errors.New("campaign capacity exceeded")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrPetNotFound indicates that the requested pet does not exist in the store.
	ErrPetNotFound = fmt.Errorf("%w: pet", ErrNotFound)

	// ErrCampaignNotFound indicates that the requested campaign does not exist in the store.
	ErrCampaignNotFound = fmt.Errorf("%w: campaign", ErrNotFound)

	// ErrDonationNotFound indicates that the requested donation does not exist in the store.
	ErrDonationNotFound = fmt.Errorf("%w: donation", ErrNotFound)

	// ErrAdoptionRequestNotFound indicates that the requested adoption request
	// does not exist in the store.
	ErrAdoptionRequestNotFound = fmt.Errorf("%w: adoption request", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Entity-specific not found errors all wrap ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
