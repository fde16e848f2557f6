// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package urn defines the tenant identifier shared by every part of the
// engine. The same identifier names the client invoking a unit and the owner
// who provides it, keys the user registry and appears as payer and payee on
// billing receipts.
//
// An identifier is one or more colon separated segments, for example `alice`
// or `urn:github:526301`. The canonical form is the text itself, so equality,
// hashing and ordering all follow the string.
package urn
