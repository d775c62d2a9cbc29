package model

import "database/sql"

// ClientContact - контактные данные клиента.
type ClientContact struct {
	ID        int    `db:"client_id" json:"client_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
}

// ClientActivity содержит последнее бронирование и последний отзыв клиента.
// Отзыв ищется независимо от бронирования и может относиться к другому туру.
type ClientActivity struct {
	ClientID        int            `db:"client_id"`
	FirstName       string         `db:"first_name"`
	LastName        string         `db:"last_name"`
	LastBookingDate sql.NullTime   `db:"last_booking_date"`
	LastTourName    sql.NullString `db:"last_tour_name"`
	LastRating      sql.NullInt64  `db:"last_rating"`
	LastComment     sql.NullString `db:"last_comment"`
}
