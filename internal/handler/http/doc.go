// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

// Package http implements the HTTP transport layer of the gym management
// API. It provides middleware, route handlers, and request/response
// utilities for the REST surface. Authentication, tracing and request
// logging are handled at this layer before requests are forwarded to the
// service layer.
//
// Route map (all under /api):
//
//	POST /api/auth/register        create an account, returns user + token
//	POST /api/auth/login           authenticate, returns user + token
//	POST /api/auth/logout          revoke the presented token (authenticated)
//	GET  /api/status               health, version and uptime
//
// plus, authenticated, one CRUD block per resource: /api/alunos,
// /api/professores, /api/treinos, /api/planos, /api/planos-alunos, and the
// aluno search endpoints /api/alunos/consulta/avancada and
// /api/alunos/consulta/complexa.
package http
