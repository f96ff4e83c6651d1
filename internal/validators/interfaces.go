// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

// Package validators encodes the input rules of every request body accepted
// by the API. Validation is decoupled from the transport layer: handlers
// decode, services validate through the injected [Validator].
//
// A validation pass never stops at the first violation; every broken rule is
// reported so the client can fix the whole payload in one round trip.
package validators

import (
	"context"

	"github.com/dmaraujo/gymkeeper/models"
)

// Validator validates a decoded request value. A nil or empty result means
// the value passed; otherwise each entry names one violated rule.
//
// Passing a value of an unsupported type is a programming error and yields a
// single field error on the "_" pseudo-field.
type Validator interface {
	Validate(ctx context.Context, obj any) []models.FieldError
}
