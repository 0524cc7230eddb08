// Package validator provides ready-made leaf rules for validex: string formats,
// email and URL addresses, UUIDs, patterns, choices, numeric signs, dates and
// go-playground/validator tags.
//
// Every helper returns a Rule, which is a validex.Verifier and a
// validex.Checker at the same time. Rules therefore compose with validex.Not,
// validex.All and validex.Any, and plug straight into validex.Bind:
//
//	func (u User) Validate() error {
//	    return validex.Validate(
//	        validex.Bind("email", validator.Email[string](), u.Email),
//	        validex.Bind("id", validator.UUID[string](), u.ID),
//	        validex.Bind("role", validator.OneOf("admin", "member"), u.Role),
//	        validex.Bind("nickname", validex.Not[string](validator.OneOfFold[string]("root", "admin")), u.Nickname),
//	    )
//	}
//
// # Error Handling
//
// Failures are *Violation values carrying a stable Code ("email", "uuid", ...)
// and a message. Each Violation unwraps to a category sentinel
// (ErrFieldRequired, ErrInvalidValue, ErrOutOfRange, ErrInvalidFormat), so
// callers can use errors.Is through any validex wrapper:
//
//	if errors.Is(err, validator.ErrInvalidFormat) {
//	    // ...
//	}
//
// Rule errors are total: they describe the rule even for values that pass,
// which is what validex.Not needs to report a match.
//
// # Concurrency
//
// Rules are immutable. Tag shares one go-playground validator instance, built
// lazily and safe for concurrent use.
package validator
