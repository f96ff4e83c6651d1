package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/dmaraujo/gymkeeper/models"
)

var (
	nomeRegexp     = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ ]+$`)
	telefoneRegexp = regexp.MustCompile(`^[0-9]+$`)
)

// EntityValidator validates every request body the API accepts. One
// instance is shared by all services.
type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any) []models.FieldError {
	switch value := obj.(type) {
	case models.Aluno:
		return v.validateAluno(value)
	case *models.Aluno:
		return v.validateAluno(*value)

	case models.Professor:
		return v.validateProfessor(value)
	case *models.Professor:
		return v.validateProfessor(*value)

	case models.Treino:
		return v.validateTreino(value)
	case *models.Treino:
		return v.validateTreino(*value)

	case models.Plano:
		return v.validatePlano(value)
	case *models.Plano:
		return v.validatePlano(*value)

	case models.PlanoAluno:
		return v.validatePlanoAluno(value)
	case *models.PlanoAluno:
		return v.validatePlanoAluno(*value)

	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	default:
		return []models.FieldError{{Field: "_", Message: msgUnsupported}}
	}
}

func (v *EntityValidator) validateAluno(aluno models.Aluno) []models.FieldError {
	var violations []models.FieldError

	violations = appendNomeRules(violations, "nome", aluno.Nome, true)
	violations = appendEmailRules(violations, "email", aluno.Email, true)

	switch {
	case aluno.Telefone == "":
		violations = append(violations, models.FieldError{Field: "telefone", Message: msgRequired})
	case !telefoneRegexp.MatchString(aluno.Telefone) || len(aluno.Telefone) < 10 || len(aluno.Telefone) > 11:
		violations = append(violations, models.FieldError{Field: "telefone", Message: "must contain 10 to 11 digits"})
	}

	switch {
	case aluno.DataNascimento == "":
		violations = append(violations, models.FieldError{Field: "dataNascimento", Message: msgRequired})
	case !isISODate(aluno.DataNascimento):
		violations = append(violations, models.FieldError{Field: "dataNascimento", Message: "must be an ISO-8601 date (YYYY-MM-DD)"})
	}

	if aluno.Idade < 0 {
		violations = append(violations, models.FieldError{Field: "idade", Message: "must be zero or greater"})
	}
	if aluno.Peso < 0 {
		violations = append(violations, models.FieldError{Field: "peso", Message: "must be zero or greater"})
	}

	return violations
}

func (v *EntityValidator) validateProfessor(professor models.Professor) []models.FieldError {
	var violations []models.FieldError

	violations = appendNomeRules(violations, "nome", professor.Nome, true)
	violations = appendEmailRules(violations, "email", professor.Email, true)

	if professor.Especialidade == "" {
		violations = append(violations, models.FieldError{Field: "especialidade", Message: msgRequired})
	}

	if professor.Telefone != "" {
		if !telefoneRegexp.MatchString(professor.Telefone) || len(professor.Telefone) < 10 {
			violations = append(violations, models.FieldError{Field: "telefone", Message: "must contain at least 10 digits"})
		}
	}
	if professor.Salario < 0 {
		violations = append(violations, models.FieldError{Field: "salario", Message: "must be zero or greater"})
	}

	return violations
}

func (v *EntityValidator) validateTreino(treino models.Treino) []models.FieldError {
	var violations []models.FieldError

	violations = appendNomeRules(violations, "nome", treino.Nome, false)

	if len(treino.Exercicios) == 0 {
		violations = append(violations, models.FieldError{Field: "exercicios", Message: "must be a non-empty list"})
	} else {
		for i, exercicio := range treino.Exercicios {
			if exercicio == "" {
				violations = append(violations, models.FieldError{
					Field:   fmt.Sprintf("exercicios[%d]", i),
					Message: "must not be empty",
				})
			}
		}
	}

	if treino.Duracao < 0 {
		violations = append(violations, models.FieldError{Field: "duracao", Message: "must be at least 1"})
	}
	if treino.Dificuldade != 0 && (treino.Dificuldade < 1 || treino.Dificuldade > 10) {
		violations = append(violations, models.FieldError{Field: "dificuldade", Message: "must be between 1 and 10"})
	}
	if utf8.RuneCountInString(treino.Descricao) > 500 {
		violations = append(violations, models.FieldError{Field: "descricao", Message: "must be at most 500 characters"})
	}

	return violations
}

func (v *EntityValidator) validatePlano(plano models.Plano) []models.FieldError {
	var violations []models.FieldError

	violations = appendNomeRules(violations, "nome", plano.Nome, false)

	if plano.Preco < 0 {
		violations = append(violations, models.FieldError{Field: "preco", Message: "must be zero or greater"})
	}
	if plano.DuracaoMeses < 1 {
		violations = append(violations, models.FieldError{Field: "duracaoMeses", Message: "must be at least 1"})
	}

	return violations
}

func (v *EntityValidator) validatePlanoAluno(planoAluno models.PlanoAluno) []models.FieldError {
	var violations []models.FieldError

	if planoAluno.PlanoID == "" {
		violations = append(violations, models.FieldError{Field: "planoId", Message: msgRequired})
	}
	if planoAluno.AlunoID == "" {
		violations = append(violations, models.FieldError{Field: "alunoId", Message: msgRequired})
	}
	if planoAluno.DataInicio != "" && !isISODate(planoAluno.DataInicio) {
		violations = append(violations, models.FieldError{Field: "dataInicio", Message: "must be an ISO-8601 date (YYYY-MM-DD)"})
	}

	return violations
}

func (v *EntityValidator) validateRegister(req models.RegisterRequest) []models.FieldError {
	var violations []models.FieldError

	switch nameLen := utf8.RuneCountInString(req.Name); {
	case req.Name == "":
		violations = append(violations, models.FieldError{Field: "name", Message: msgRequired})
	case nameLen < 2 || nameLen > 100:
		violations = append(violations, models.FieldError{Field: "name", Message: "must be 2 to 100 characters"})
	}

	violations = appendEmailRules(violations, "email", req.Email, true)

	switch {
	case req.Password == "":
		violations = append(violations, models.FieldError{Field: "password", Message: msgRequired})
	case utf8.RuneCountInString(req.Password) < 6:
		violations = append(violations, models.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}

	if req.Role != "" && req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		violations = append(violations, models.FieldError{Field: "role", Message: `must be either "user" or "admin"`})
	}

	return violations
}

func (v *EntityValidator) validateLogin(req models.LoginRequest) []models.FieldError {
	var violations []models.FieldError

	violations = appendEmailRules(violations, "email", req.Email, true)
	if req.Password == "" {
		violations = append(violations, models.FieldError{Field: "password", Message: msgRequired})
	}

	return violations
}

// appendNomeRules enforces the shared name rule: required, 3 to 100
// characters. Person names are additionally restricted to letters and
// spaces.
func appendNomeRules(violations []models.FieldError, field string, nome string, lettersOnly bool) []models.FieldError {
	switch nomeLen := utf8.RuneCountInString(nome); {
	case nome == "":
		return append(violations, models.FieldError{Field: field, Message: msgRequired})
	case nomeLen < 3 || nomeLen > 100:
		return append(violations, models.FieldError{Field: field, Message: "must be 3 to 100 characters"})
	case lettersOnly && !nomeRegexp.MatchString(nome):
		return append(violations, models.FieldError{Field: field, Message: "must contain only letters and spaces"})
	}

	return violations
}

func appendEmailRules(violations []models.FieldError, field string, email string, required bool) []models.FieldError {
	if email == "" {
		if required {
			return append(violations, models.FieldError{Field: field, Message: msgRequired})
		}
		return violations
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return append(violations, models.FieldError{Field: field, Message: msgInvalidEmail})
	}

	return violations
}

func isISODate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
