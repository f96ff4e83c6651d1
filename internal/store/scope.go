// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmaraujo/gymkeeper/models"
)

// qb is the statement builder shared by every repository. PostgreSQL
// numbered placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ScopeFilter returns the ownership predicate for the given identity merged
// with base. Admin identities see every row; any other identity only rows
// whose owner_id matches its own id.
//
// Every list, get-by-id, update and delete in this package routes its WHERE
// clause through ScopeFilter, so the ownership rule is enforced at the
// data-access boundary rather than checked after the fetch. There is exactly
// one implementation; resource repositories must not restate the predicate.
//
// The base map is never mutated.
func ScopeFilter(ident models.Identity, base sq.Eq) sq.Eq {
	scoped := make(sq.Eq, len(base)+1)
	for column, value := range base {
		scoped[column] = value
	}

	if !ident.IsAdmin() {
		scoped["owner_id"] = ident.ID
	}

	return scoped
}

// scanList joins column names for a RETURNING clause.
func scanList(columns []string) string {
	return strings.Join(columns, ", ")
}
