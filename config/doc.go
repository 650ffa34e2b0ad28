// Package config loads the compiler's runtime configuration from a TOML
// file via github.com/BurntSushi/toml, the decoder the retrieval pack's
// config-driven services standardize on. Runtime holds everything the
// build/cache/obslog layers need that isn't part of a Document itself:
// staged-feature policy, cache sizing, session TTL/quota, and logger
// mode.
package config
