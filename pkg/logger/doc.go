// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent keys.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it with ContextHandler, which runs registered
// ContextExtractor callbacks on every record and skips keys the record
// already carries.
//
// # Usage
//
//	level, err := logger.ParseLevel("debug")
//	if err != nil {
//		return err
//	}
//	log := logger.New(
//		logger.WithCLI("validex"),
//		logger.WithLevel(level),
//		logger.WithFileFromContext(),
//	)
//
//	ctx = logger.WithFileContext(ctx, "signup.go")
//	log.InfoContext(ctx, "generated validation methods",
//		logger.Struct("Signup"),
//		logger.Count("fields", 3),
//	)
//
// # Configuration
//
//   - WithCLI: text records on stderr.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: minimum slog.Level.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue / WithFileFromContext: attributes from context.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
