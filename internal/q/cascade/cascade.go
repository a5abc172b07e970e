package cascade

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// Loader is a prioritized list of configuration sources. The zero value is ready to use.
type Loader struct {
	sources []source // low to high priority
}

// Providence records where a configuration value came from.
type Providence struct {
	SourceType       string // "default", "json_file" or "env"
	SourceIdentifier string // file path for "json_file"; "" otherwise
}

// IsSet reports whether any source set the value.
func (p Providence) IsSet() bool {
	return p.SourceType != ""
}

// Default reports whether the value came from the defaults.
func (p Providence) Default() bool {
	return p.SourceType == "default"
}

func (p Providence) String() string {
	if p.SourceIdentifier == "" {
		return p.SourceType
	}
	return p.SourceType + ":" + p.SourceIdentifier
}

// New returns an empty Loader, for fluent chaining.
func New() *Loader {
	return &Loader{}
}

// WithDefaults registers m as a source of default values. A nil map contributes nothing.
func (c *Loader) WithDefaults(m map[string]any) *Loader {
	c.sources = append(c.sources, &mapSource{m: m})
	return c
}

// WithJSONFile registers the JSON object file at path (expanded with ExpandPath). The file is read by StrictlyLoad.
func (c *Loader) WithJSONFile(path string) *Loader {
	c.sources = append(c.sources, &jsonFileSource{path: path})
	return c
}

// WithNearestJSONFile searches upward from startDir (or the working directory if empty) for the first non-empty file named fileName and registers it. fileName must
// be relative; WithNearestJSONFile panics otherwise. If nothing is found, the Loader is unchanged.
func (c *Loader) WithNearestJSONFile(fileName string, startDir string) *Loader {
	if filepath.IsAbs(fileName) {
		panic("cascade: fileName must be relative")
	}
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return c
		}
		startDir = wd
	}
	if fi, err := os.Stat(startDir); err == nil && !fi.IsDir() {
		startDir = filepath.Dir(startDir)
	}

	for dir := startDir; ; {
		candidate := filepath.Join(dir, fileName)
		if data, err := os.ReadFile(candidate); err == nil && strings.TrimSpace(string(data)) != "" {
			c.sources = append(c.sources, &jsonFileSource{path: candidate})
			return c
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return c
		}
		dir = parent
	}
}

// WithEnv registers environment variables as a source. m maps configuration keys to variable names; unset variables are skipped.
func (c *Loader) WithEnv(m map[string]string) *Loader {
	c.sources = append(c.sources, &envSource{keyToEnv: m})
	return c
}

// StrictlyLoad applies all sources to dest, which must be a non-nil pointer to a struct. It fails fast on the first source that cannot be parsed or applied.
func (c *Loader) StrictlyLoad(dest any) error {
	v := reflect.ValueOf(dest)
	if dest == nil || v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dest must be a non-nil pointer to struct")
	}
	structVal := v.Elem()

	fields, err := indexFields(structVal.Type())
	if err != nil {
		return err
	}

	for _, src := range c.sources {
		values, err := src.values()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}
			return fmt.Errorf("%s: %w", src.name(), err)
		}
		for key, raw := range values {
			idx, ok := fields[strings.ToLower(key)]
			if !ok {
				continue
			}
			if err := setField(structVal.Field(idx), raw); err != nil {
				return fmt.Errorf("%s: %s: %w", src.name(), strings.ToLower(key), err)
			}
			recordProvidence(structVal, structVal.Type().Field(idx).Name, src.providence())
		}
	}
	return nil
}

// indexFields maps lowercase keys to field indices.
func indexFields(t reflect.Type) (map[string]int, error) {
	fields := map[string]int{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := fieldKey(f)
		if key == "-" {
			continue
		}
		if prev, ok := fields[key]; ok {
			return nil, fmt.Errorf("fields %s and %s both use key %q", t.Field(prev).Name, f.Name, key)
		}
		fields[key] = i
	}
	return fields, nil
}

func fieldKey(f reflect.StructField) string {
	for _, tag := range []string{"cascade", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		name = strings.TrimSpace(name)
		if tag == "cascade" && name == "-" {
			return "-"
		}
		if name != "" && name != "-" {
			return strings.ToLower(name)
		}
	}
	return strings.ToLower(f.Name)
}

func recordProvidence(structVal reflect.Value, fieldName string, prov Providence) {
	pf := structVal.FieldByName(fieldName + "Providence")
	if pf.IsValid() && pf.CanSet() && pf.Type() == reflect.TypeOf(Providence{}) {
		pf.Set(reflect.ValueOf(prov))
	}
}

// setField coerces raw (string, bool, float64 or int) into f.
func setField(f reflect.Value, raw any) error {
	switch f.Kind() {
	case reflect.String:
		switch v := raw.(type) {
		case string:
			f.SetString(v)
		case bool:
			f.SetString(strconv.FormatBool(v))
		case int:
			f.SetString(strconv.Itoa(v))
		case float64:
			f.SetString(strconv.FormatFloat(v, 'f', -1, 64))
		default:
			return fmt.Errorf("cannot coerce %T to string", raw)
		}
	case reflect.Bool:
		switch v := raw.(type) {
		case bool:
			f.SetBool(v)
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("cannot parse bool from %q", v)
			}
			f.SetBool(b)
		default:
			return fmt.Errorf("cannot coerce %T to bool", raw)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v := raw.(type) {
		case int:
			f.SetInt(int64(v))
		case float64:
			f.SetInt(int64(v))
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("cannot parse int from %q", v)
			}
			f.SetInt(n)
		default:
			return fmt.Errorf("cannot coerce %T to int", raw)
		}
	default:
		return fmt.Errorf("unsupported field kind %s", f.Kind())
	}
	return nil
}
