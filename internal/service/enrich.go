package service

import (
	"time"

	"github.com/google/uuid"

	"tooldocker/internal/model"
)

// EnrichedProduct is a product with its owner's profile attached. Profiles is
// nil when the owner has no profile row; display layers substitute "Unknown".
type EnrichedProduct struct {
	model.Product
	Profiles *model.Profile `json:"profiles"`
}

// EnrichedUser is a profile left-joined with its approval row. An absent row
// means not approved.
type EnrichedUser struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FullName   string     `json:"full_name"`
	IsApproved bool       `json:"is_approved"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}

// Enrich attaches each product's owner profile via a single id lookup table.
// Every cross-entity listing in the system goes through here.
func Enrich(products []model.Product, profiles []model.Profile) []EnrichedProduct {
	byID := make(map[uuid.UUID]*model.Profile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}

	enriched := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		enriched = append(enriched, EnrichedProduct{
			Product:  p,
			Profiles: byID[p.UserID],
		})
	}
	return enriched
}

// EnrichUsers left-joins profiles with approvals by user id.
func EnrichUsers(profiles []model.Profile, approvals []model.UserApproval) []EnrichedUser {
	byUser := make(map[uuid.UUID]*model.UserApproval, len(approvals))
	for i := range approvals {
		byUser[approvals[i].UserID] = &approvals[i]
	}

	users := make([]EnrichedUser, 0, len(profiles))
	for _, p := range profiles {
		u := EnrichedUser{
			ID:       p.ID,
			Email:    p.Email,
			FullName: p.FullName,
		}
		if a := byUser[p.ID]; a != nil {
			u.IsApproved = a.IsApproved
			u.ApprovedAt = a.ApprovedAt
		}
		users = append(users, u)
	}
	return users
}
