package models

import "time"

// Treino is a workout plan record. ProfessorID and AlunoID are advisory
// references: the store does not enforce that the referenced rows exist.
type Treino struct {
	// ID is the opaque unique identifier of the record (UUID).
	ID string `json:"id"`

	// OwnerID is the account that created the record. Immutable.
	OwnerID string `json:"ownerId"`

	Nome        string   `json:"nome"`
	Descricao   string   `json:"descricao,omitempty"`
	Exercicios  []string `json:"exercicios"`
	Duracao     int      `json:"duracao,omitempty"`
	Dificuldade int      `json:"dificuldade,omitempty"`
	ProfessorID string   `json:"professorId,omitempty"`
	AlunoID     string   `json:"alunoId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Treino model.
func (t Treino) TableName() string {
	return "treinos"
}
