// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package variable implements the nodes of a spec tree.
//
// # Variants
//
//   - Literal: a string, number or bool, e.g. `"text"`, `42`, `true`.
//   - Array: an ordered list of nodes, e.g. `[1,"a"]`.
//   - Arg: a positional argument of the enclosing unit, e.g. `${1:branch}`.
//   - Composite: a call to a compiled constructor, e.g. `echo(1)`.
//   - Local: a call to another unit of the same owner, e.g. `build()`.
//   - Foreign: a call to a unit owned by some tenant, e.g. `alice:build()`.
//
// Every node is immutable once built and may be instantiated concurrently.
//
// # Cross-tenant billing
//
// A Foreign node whose client differs from its owner replaces the Work for
// the duration of its own subtree with an interceptor. Any charge made
// inside that subtree becomes a receipt from the client to the owner,
// labelled with the reference name. A deeper Foreign node builds its own
// interceptor relative to its own client and owner, where the enclosing
// owner is the new client, so cost is attributed hop by hop no matter how
// deep units are composed.
package variable
