package models

import "time"

// PlanoAluno assigns a membership plan to a student. PlanoID and AlunoID are
// advisory references and may dangle; no cross-entity transaction verifies
// them at creation time.
type PlanoAluno struct {
	// ID is the opaque unique identifier of the record (UUID).
	ID string `json:"id"`

	// OwnerID is the account that created the record. Immutable.
	OwnerID string `json:"ownerId"`

	PlanoID    string `json:"planoId"`
	AlunoID    string `json:"alunoId"`
	DataInicio string `json:"dataInicio,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the PlanoAluno model.
func (p PlanoAluno) TableName() string {
	return "planos_alunos"
}
