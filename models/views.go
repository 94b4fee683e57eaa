package models

// TechnicianDetail is a technician user joined with their profile and
// portfolio for listing and detail responses.
type TechnicianDetail struct {
	User
	Profile   *TechnicianProfile `json:"profile"`
	Portfolio []PortfolioItem    `json:"portfolio"`
}

// BidDetail is a bid joined with the bidding technician.
type BidDetail struct {
	Bid
	Technician *User `json:"technician"`
}

// JobDetail is a job joined with its customer and bids.
type JobDetail struct {
	Job
	Customer *User       `json:"customer"`
	Bids     []BidDetail `json:"bids"`
}
