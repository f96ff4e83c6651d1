// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

// Package models defines the domain entities of the gym management service:
// the user account, the session token, and the five owned resources
// (aluno, professor, treino, plano, plano-aluno).
//
// Every owned resource carries the identifier of the account that created it.
// The owner is stamped once at creation and is immutable afterwards; the
// service layer discards any client-supplied owner on update.
package models

import "time"

// Aluno is a gym student record.
type Aluno struct {
	// ID is the opaque unique identifier of the record (UUID).
	ID string `json:"id"`

	// OwnerID is the account that created the record. Immutable.
	OwnerID string `json:"ownerId"`

	Nome           string  `json:"nome"`
	Email          string  `json:"email"`
	Telefone       string  `json:"telefone"`
	DataNascimento string  `json:"dataNascimento"`
	Idade          int     `json:"idade"`
	Peso           float64 `json:"peso"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Aluno model.
func (a Aluno) TableName() string {
	return "alunos"
}

// AlunoSearch carries the optional predicates of the aluno search endpoints.
// Zero values mean "not filtered".
type AlunoSearch struct {
	// IdadeAcima keeps alunos with idade strictly greater than the value.
	IdadeAcima int

	// PesoAcima keeps alunos with peso strictly greater than the value.
	PesoAcima float64

	// PesoMin and PesoMax bound peso inclusively below and exclusively above.
	PesoMin float64
	PesoMax float64

	// Idades is a set-membership filter on idade.
	Idades []int

	// Nomes is a set-membership filter on nome.
	Nomes []string
}
