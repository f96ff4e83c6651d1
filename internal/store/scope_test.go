package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmaraujo/gymkeeper/models"
)

func TestScopeFilter_UserGetsOwnerPredicate(t *testing.T) {
	ident := models.Identity{ID: "u-1", Role: models.RoleUser}

	scoped := ScopeFilter(ident, sq.Eq{"id": "a-1"})

	if scoped["owner_id"] != "u-1" {
		t.Errorf("expected owner_id=u-1, got %v", scoped["owner_id"])
	}
	if scoped["id"] != "a-1" {
		t.Errorf("expected id=a-1, got %v", scoped["id"])
	}
}

func TestScopeFilter_AdminSeesEverything(t *testing.T) {
	ident := models.Identity{ID: "u-1", Role: models.RoleAdmin}

	scoped := ScopeFilter(ident, sq.Eq{"id": "a-1"})

	if _, ok := scoped["owner_id"]; ok {
		t.Error("admin filter must not constrain owner_id")
	}
	if scoped["id"] != "a-1" {
		t.Errorf("expected id=a-1, got %v", scoped["id"])
	}
}

func TestScopeFilter_NilBase(t *testing.T) {
	ident := models.Identity{ID: "u-1", Role: models.RoleUser}

	scoped := ScopeFilter(ident, nil)

	if len(scoped) != 1 || scoped["owner_id"] != "u-1" {
		t.Errorf("expected only owner_id predicate, got %v", scoped)
	}
}

func TestScopeFilter_DoesNotMutateBase(t *testing.T) {
	base := sq.Eq{"id": "a-1"}
	ident := models.Identity{ID: "u-1", Role: models.RoleUser}

	_ = ScopeFilter(ident, base)

	if len(base) != 1 {
		t.Errorf("base filter was mutated: %v", base)
	}
}

func TestScopeFilter_DeterministicSQL(t *testing.T) {
	ident := models.Identity{ID: "u-1", Role: models.RoleUser}

	query, args, err := qb.Select("id").
		From("alunos").
		Where(ScopeFilter(ident, sq.Eq{"id": "a-1"})).
		ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id FROM alunos WHERE id = $1 AND owner_id = $2"
	if query != want {
		t.Errorf("expected %q, got %q", want, query)
	}
	if len(args) != 2 || args[0] != "a-1" || args[1] != "u-1" {
		t.Errorf("unexpected args: %v", args)
	}
}
