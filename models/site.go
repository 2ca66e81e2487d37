package models

import "time"

// SitePackage is an offer shown on the public mini-site.
type SitePackage struct {
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Testimonial is a short client quote shown on the mini-site.
type Testimonial struct {
	Name string `bson:"name" json:"name"`
	Text string `bson:"text" json:"text"`
}

// TutorSite is the tutor's public profile mini-site. The slug is the public
// identifier used by the profile page and the booking page; only a published
// site is reachable by slug.
type TutorSite struct {
	ID           string        `bson:"id" json:"id"`
	TutorID      string        `bson:"tutor_id" json:"tutorId"`
	Slug         string        `bson:"slug" json:"slug"`
	Headline     string        `bson:"headline,omitempty" json:"headline,omitempty"`
	Bio          string        `bson:"bio,omitempty" json:"bio,omitempty"`
	Packages     []SitePackage `bson:"packages,omitempty" json:"packages,omitempty"`
	Testimonials []Testimonial `bson:"testimonials,omitempty" json:"testimonials,omitempty"`
	BookingLink  string        `bson:"booking_link,omitempty" json:"bookingLink,omitempty"`
	Published    bool          `bson:"published" json:"published"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updatedAt"`
}
