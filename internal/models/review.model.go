package models

import (
	"github.com/google/uuid"
)

// Review is feedback attached 0..1 to a completed booking. Created once by
// the booking's owner, immutable thereafter.
type Review struct {
	BaseUUIDModel
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"bookingId"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"             json:"authorId"`
	Rating    int       `gorm:"type:int;not null"              json:"rating"`
	Text      *string   `gorm:"type:text"                      json:"text,omitempty"`

	Author  User    `gorm:"foreignKey:AuthorID"  json:"-"`
	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

// ReviewView includes the author name for provider detail responses.
type ReviewView struct {
	Review
	Author struct {
		Name string `json:"name"`
	} `json:"author"`
}

func (r *Review) ToView() ReviewView {
	view := ReviewView{Review: *r}
	view.Author.Name = r.Author.Name
	return view
}
