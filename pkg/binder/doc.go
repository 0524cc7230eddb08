// Package binder decodes HTTP request bodies into structs and validates them.
//
// JSON and YAML check the Content-Type header, decode strictly (unknown
// fields are errors) and then call Validate when the target implements
// validex.Validatable. WriteError turns the returned error into a JSON
// response.
//
// # Usage
//
//	type CreateUserRequest struct {
//		Name  string `json:"name" yaml:"name"`
//		Email string `json:"email" yaml:"email"`
//	}
//
//	func (r CreateUserRequest) Validate() error {
//		return validex.Validate(
//			validex.Bind("name", validex.Length[string](validex.Between(1, 64)), r.Name),
//			validex.Bind("email", validator.Email[string](), r.Email),
//		)
//	}
//
//	var req CreateUserRequest
//	if err := binder.JSON(r, &req); err != nil {
//		binder.WriteError(w, err)
//		return
//	}
//
// # Errors
//
// Decoding failures wrap ErrInvalidJSON or ErrInvalidYAML. Header problems
// wrap ErrMissingContentType or ErrUnsupportedMediaType. Validation failures
// wrap ErrValidation and keep the *validex.FieldError reachable:
//
//	if fe, ok := validex.AsFieldError(err); ok {
//		log.Println(fe.Key)
//	}
package binder
