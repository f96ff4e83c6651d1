package models

import "time"

// Plano is a membership plan record.
type Plano struct {
	// ID is the opaque unique identifier of the record (UUID).
	ID string `json:"id"`

	// OwnerID is the account that created the record. Immutable.
	OwnerID string `json:"ownerId"`

	Nome         string  `json:"nome"`
	Descricao    string  `json:"descricao,omitempty"`
	Preco        float64 `json:"preco"`
	DuracaoMeses int     `json:"duracaoMeses"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Plano model.
func (p Plano) TableName() string {
	return "planos"
}
