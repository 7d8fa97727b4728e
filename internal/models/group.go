package models

// Group represents a trip group: a named set of member names that
// share expenses. The creator owns the group and is the only user
// allowed to view its details or record expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"group_id"`

	// Name is the display name of the group (e.g., "Goa Trip 2025").
	Name string `json:"name"`

	// Members is the set of member names in this group, unique and
	// non-empty. The creator's display name is always included.
	Members []string `json:"members"`

	// CreatorEmail references the User who created the group.
	CreatorEmail string `json:"creator_email"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"created_at"`
}

// HasMember reports whether name is in the group's member set.
func (g *Group) HasMember(name string) bool {
	for _, m := range g.Members {
		if m == name {
			return true
		}
	}
	return false
}
