// Package obslog wraps go.uber.org/zap into the structured logger this
// module threads explicitly through build (via build.Options) rather
// than reaching for a package-level global.
// Every log line carries the fields the error taxonomy already uses
// (featureId, referenceId, ...) so a log line and a returned
// *ir.CoreError read the same way.
package obslog
