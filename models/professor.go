package models

import "time"

// Professor is a gym instructor record.
type Professor struct {
	// ID is the opaque unique identifier of the record (UUID).
	ID string `json:"id"`

	// OwnerID is the account that created the record. Immutable.
	OwnerID string `json:"ownerId"`

	Nome          string  `json:"nome"`
	Email         string  `json:"email"`
	Especialidade string  `json:"especialidade"`
	Telefone      string  `json:"telefone,omitempty"`
	Salario       float64 `json:"salario,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Professor model.
func (p Professor) TableName() string {
	return "professores"
}
