package auth

import "servio_backend/internal/models"

// Stateless role and ownership predicates. Every mutating endpoint applies
// exactly one of these before touching the store.

// IsBusiness reports whether the profile belongs to a business account.
func IsBusiness(profile *models.Profile) bool {
	return profile != nil && profile.Type == models.ProfileTypeBusiness
}

// IsCustomer reports whether the profile belongs to a customer account.
func IsCustomer(profile *models.Profile) bool {
	return profile != nil && profile.Type == models.ProfileTypeCustomer
}

// IsOwnerOrAdmin allows the resource owner and staff users.
func IsOwnerOrAdmin(actorID, ownerID string, isStaff bool) bool {
	return actorID != "" && (actorID == ownerID || isStaff)
}
