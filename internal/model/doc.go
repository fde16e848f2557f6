// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the contracts shared by every stage of unit
// resolution: the Variable tree node, the execution context (Work), the
// registry and ledger collaborators, and the value types that flow between
// them (Spec, Dollars, Receipt, Arguments).
//
// # Core Concepts
//
//   - Unit: a named, owned, parameterized specification. Its Spec is text in
//     the reference grammar.
//
//   - Variable: a node of the tree the grammar builds from a Spec. A tree is
//     immutable once built and may be instantiated any number of times; every
//     call produces an independent runtime object graph.
//
//   - Work: the ambient record of which unit is executing, who owns it and
//     how to charge for its cost. It always travels as position 0 of the
//     Arguments passed to Instantiate.
//
//   - Receipt: an append-only billing record written to the Ledger when a
//     unit charges across a tenant boundary.
//
// Why a separate model package?
//
// The grammar, the variable variants, the registry and the ledger all depend
// on these contracts but not on each other. Keeping the contracts here lets
// the grammar build variables that in turn call back into a grammar without
// an import cycle.
package model
