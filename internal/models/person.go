package models

// UnknownPersonName is shown for IDs that no longer belong to a person.
const UnknownPersonName = "Unknown"

// Person is a participant in the shared ledger.
// People are created and deleted explicitly and never edited in place.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string `json:"id"`

	// OwnerID is the user whose ledger this person belongs to.
	OwnerID string `json:"ownerId,omitempty"`

	// Name is the display name.
	Name string `json:"name"`

	// Color is the display colour in #rrggbb form.
	Color string `json:"color"`

	// CreatedAt is the Unix timestamp when the person was added.
	CreatedAt int64 `json:"createdAt,omitempty"`
}
