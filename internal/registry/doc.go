// Package registry is the in-memory tenant registry consumed by the engine.
//
// The Registry maps identifiers to users and each user to the units they
// own. It is populated at startup, either programmatically or from HCL
// files, and then validated so that every stored spec parses before the
// first reference is resolved. Charges are forwarded to the configured
// ledger.
//
// A registry file looks like this:
//
//	user "alice" {
//	  unit "deploy" {
//	    spec = "fee(\"$0.25\",\"deploy\",echo($${1:branch}))"
//	  }
//	}
//
// Spec strings are HCL templates, so argument placeholders are written
// with a doubled dollar sign.
package registry
