// Package cascade loads layered configuration into a flat Go struct from multiple sources with predictable precedence.
//
// A Loader holds sources ordered from lowest to highest priority: register them with WithDefaults, WithJSONFile, WithNearestJSONFile and WithEnv, then call StrictlyLoad.
// Later sources overwrite values set by earlier ones.
//
// Keys are matched case-insensitively against the `cascade` tag name, then the `json` tag name, then the field name. Unknown keys are ignored. Supported field kinds
// are string, bool and the signed integers; string values are coerced to bool/int when parseable and numbers/bools are formatted for string fields.
//
// If the struct has a field named <Field>Providence of type Providence, it records which source last set <Field>.
//
// Missing or unreadable files and empty files contribute nothing. A file that cannot be parsed, or a value that cannot be coerced, makes StrictlyLoad fail with an error
// naming the source.
//
// Example
//
//	type Config struct {
//	    Split           string
//	    SplitProvidence cascade.Providence `json:"-"`
//	}
//
//	var cfg Config
//	err := cascade.New().
//	    WithDefaults(map[string]any{"split": "word"}).
//	    WithNearestJSONFile(".textdiff/config.json", "").
//	    WithEnv(map[string]string{"split": "TEXTDIFF_SPLIT"}).
//	    StrictlyLoad(&cfg)
package cascade
