package cascade

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// source supplies flat key/value data. Values are string, bool, int or float64.
type source interface {
	name() string
	providence() Providence
	values() (map[string]any, error)
}

type mapSource struct {
	m map[string]any
}

func (s *mapSource) name() string           { return "Defaults" }
func (s *mapSource) providence() Providence { return Providence{SourceType: "default"} }

func (s *mapSource) values() (map[string]any, error) {
	out := make(map[string]any, len(s.m))
	for k, v := range s.m {
		switch v.(type) {
		case string, bool, int, float64:
		default:
			return nil, fmt.Errorf("invalid value for key '%s': unsupported type %T", k, v)
		}
		out[k] = v
	}
	return out, nil
}

type jsonFileSource struct {
	path string
}

func (s *jsonFileSource) name() string { return ExpandPath(s.path) }

func (s *jsonFileSource) providence() Providence {
	return Providence{SourceType: "json_file", SourceIdentifier: ExpandPath(s.path)}
}

func (s *jsonFileSource) values() (map[string]any, error) {
	data, err := os.ReadFile(ExpandPath(s.path))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	for k, v := range obj {
		switch v.(type) {
		case string, bool, float64, nil:
		default:
			return nil, fmt.Errorf("key '%s': nested values are not supported", k)
		}
		if v == nil {
			delete(obj, k)
		}
	}
	return obj, nil
}

type envSource struct {
	keyToEnv map[string]string
}

func (s *envSource) name() string           { return "Env" }
func (s *envSource) providence() Providence { return Providence{SourceType: "env"} }

func (s *envSource) values() (map[string]any, error) {
	out := map[string]any{}
	for key, env := range s.keyToEnv {
		if v, ok := os.LookupEnv(env); ok {
			out[key] = v
		}
	}
	return out, nil
}
