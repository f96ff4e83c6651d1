package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmaraujo/gymkeeper/internal/adapter"
	"github.com/dmaraujo/gymkeeper/models"
)

// resourceRow is one line of a resource listing: the record id plus a short
// human label.
type resourceRow struct {
	id    string
	label string
}

// resourceKind binds one API resource to the operations the browser screens
// need. The closures capture the server adapter so the Bubble Tea models
// stay transport-free.
type resourceKind struct {
	title  string
	list   func(ctx context.Context) ([]resourceRow, error)
	detail func(ctx context.Context, id string) ([]string, error)
	remove func(ctx context.Context, id string) error
}

func resourceKinds(server adapter.ServerAdapter) []resourceKind {
	return []resourceKind{
		{
			title: "Alunos",
			list: func(ctx context.Context) ([]resourceRow, error) {
				alunos, err := server.ListAlunos(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([]resourceRow, len(alunos))
				for i, a := range alunos {
					rows[i] = resourceRow{id: a.ID, label: fmt.Sprintf("%s (%d anos, %.1f kg)", a.Nome, a.Idade, a.Peso)}
				}
				return rows, nil
			},
			detail: func(ctx context.Context, id string) ([]string, error) {
				a, err := server.GetAluno(ctx, id)
				if err != nil {
					return nil, err
				}
				return []string{
					"ID:          " + a.ID,
					"Nome:        " + a.Nome,
					"Email:       " + a.Email,
					"Telefone:    " + valueOrDash(a.Telefone),
					"Nascimento:  " + valueOrDash(a.DataNascimento),
					fmt.Sprintf("Idade:       %d", a.Idade),
					fmt.Sprintf("Peso:        %.1f kg", a.Peso),
				}, nil
			},
			remove: server.DeleteAluno,
		},
		{
			title: "Professores",
			list: func(ctx context.Context) ([]resourceRow, error) {
				professores, err := server.ListProfessores(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([]resourceRow, len(professores))
				for i, p := range professores {
					rows[i] = resourceRow{id: p.ID, label: fmt.Sprintf("%s — %s", p.Nome, p.Especialidade)}
				}
				return rows, nil
			},
			detail: func(ctx context.Context, id string) ([]string, error) {
				p, err := server.GetProfessor(ctx, id)
				if err != nil {
					return nil, err
				}
				return []string{
					"ID:             " + p.ID,
					"Nome:           " + p.Nome,
					"Email:          " + p.Email,
					"Especialidade:  " + p.Especialidade,
					"Telefone:       " + valueOrDash(p.Telefone),
					"Salário:        " + formatMoney(p.Salario),
				}, nil
			},
			remove: server.DeleteProfessor,
		},
		{
			title: "Treinos",
			list: func(ctx context.Context) ([]resourceRow, error) {
				treinos, err := server.ListTreinos(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([]resourceRow, len(treinos))
				for i, t := range treinos {
					rows[i] = resourceRow{id: t.ID, label: fmt.Sprintf("%s (%d exercícios)", t.Nome, len(t.Exercicios))}
				}
				return rows, nil
			},
			detail: func(ctx context.Context, id string) ([]string, error) {
				t, err := server.GetTreino(ctx, id)
				if err != nil {
					return nil, err
				}
				lines := []string{
					"ID:           " + t.ID,
					"Nome:         " + t.Nome,
					"Descrição:    " + valueOrDash(fitText(t.Descricao, 60)),
					"Exercícios:   " + strings.Join(t.Exercicios, ", "),
					fmt.Sprintf("Duração:      %d min", t.Duracao),
					fmt.Sprintf("Dificuldade:  %d/10", t.Dificuldade),
				}
				if t.ProfessorID != "" {
					lines = append(lines, "Professor:    "+t.ProfessorID)
				}
				if t.AlunoID != "" {
					lines = append(lines, "Aluno:        "+t.AlunoID)
				}
				return lines, nil
			},
			remove: server.DeleteTreino,
		},
		{
			title: "Planos",
			list: func(ctx context.Context) ([]resourceRow, error) {
				planos, err := server.ListPlanos(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([]resourceRow, len(planos))
				for i, p := range planos {
					rows[i] = resourceRow{id: p.ID, label: fmt.Sprintf("%s — %s / %d meses", p.Nome, formatMoney(p.Preco), p.DuracaoMeses)}
				}
				return rows, nil
			},
			detail: func(ctx context.Context, id string) ([]string, error) {
				p, err := server.GetPlano(ctx, id)
				if err != nil {
					return nil, err
				}
				return []string{
					"ID:         " + p.ID,
					"Nome:       " + p.Nome,
					"Descrição:  " + valueOrDash(fitText(p.Descricao, 60)),
					"Preço:      " + formatMoney(p.Preco),
					fmt.Sprintf("Duração:    %d meses", p.DuracaoMeses),
				}, nil
			},
			remove: server.DeletePlano,
		},
		{
			title: "Planos de alunos",
			list: func(ctx context.Context) ([]resourceRow, error) {
				matriculas, err := server.ListPlanosAlunos(ctx)
				if err != nil {
					return nil, err
				}
				rows := make([]resourceRow, len(matriculas))
				for i, pa := range matriculas {
					rows[i] = resourceRow{id: pa.ID, label: planoAlunoLabel(pa)}
				}
				return rows, nil
			},
			detail: func(ctx context.Context, id string) ([]string, error) {
				pa, err := server.GetPlanoAluno(ctx, id)
				if err != nil {
					return nil, err
				}
				return []string{
					"ID:           " + pa.ID,
					"Plano:        " + pa.PlanoID,
					"Aluno:        " + pa.AlunoID,
					"Data início:  " + valueOrDash(pa.DataInicio),
				}, nil
			},
			remove: server.DeletePlanoAluno,
		},
	}
}

func planoAlunoLabel(pa models.PlanoAluno) string {
	label := fmt.Sprintf("plano %s → aluno %s", fitText(pa.PlanoID, 12), fitText(pa.AlunoID, 12))
	if pa.DataInicio != "" {
		label += " desde " + pa.DataInicio
	}
	return label
}
