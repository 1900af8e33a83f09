package customer

import "time"

type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Address   *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
