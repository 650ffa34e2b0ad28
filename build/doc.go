// Package build is the compiler's single external entry point: given a
// Document, a part id, and parameter overrides, it validates, resolves,
// schedules, and evaluates that part against a kernel.Adapter, wrapping
// the whole pipeline in content-addressed caching (cache.Store) and,
// for editing sessions, incremental reuse (cache.SessionStore). Every
// other package under this module is a leaf this one wires together;
// nothing outside build imports cache, config, or obslog directly.
package build
