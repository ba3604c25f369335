package config

import (
	"fmt"
	"slices"
	"regexp"
	"sort"
	"strings"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeString
	TypeEnum
	TypeEnumList
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	case TypeEnumList:
		return "list"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type and validation rules.
type ConfigKeySchema struct {
	Path          string          // key name, e.g. "code_prefix"
	Type          ConfigValueType // Expected value type for validation
	AllowedValues []string        // Valid values for enum and list types
	Description   string          // Human-readable description for help text
	Default       interface{}     // Default value
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"preset": {
		Path:          "preset",
		Type:          TypeEnum,
		AllowedValues: []string{"default", "strict", "lenient"},
		Description:   "Validator preset: all severities, errors only, or errors and warnings",
		Default:       "default",
	},
	"stop_on_first_error": {
		Path:        "stop_on_first_error",
		Type:        TypeBool,
		Description: "Skip remaining rules after the first rule that reports an error",
		Default:     false,
	},
	"severities": {
		Path:          "severities",
		Type:          TypeEnumList,
		AllowedValues: []string{"error", "warning", "info"},
		Description:   "Comma-separated severities to report; overrides the preset when set",
		Default:       []string{},
	},
	"check_references": {
		Path:        "check_references",
		Type:        TypeBool,
		Description: "Also check condition references and condition syntax",
		Default:     false,
	},
	"code_prefix": {
		Path:        "code_prefix",
		Type:        TypeString,
		Description: "Prefix for generated item codes",
		Default:     "Q",
	},
	"output": {
		Path:          "output",
		Type:          TypeEnum,
		AllowedValues: []string{"text", "json"},
		Description:   "Report format",
		Default:       "text",
	},
	"color": {
		Path:          "color",
		Type:          TypeEnum,
		AllowedValues: []string{"auto", "always", "never"},
		Description:   "Colored output",
		Default:       "auto",
	},
}

// KeyNames returns the known keys in sorted order.
func KeyNames() []string {
	names := make([]string, 0, len(KnownKeys))
	for name := range KnownKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// ParsedValue represents a configuration value after validation.
type ParsedValue struct {
	Raw    string      // Original string input from user
	Parsed interface{} // Value converted to correct type
	Type   ConfigValueType
}

// ValidateValue validates a value against the schema for a given key.
// Returns the parsed value or an error with details about what's wrong.
func ValidateValue(key, value string) (ParsedValue, error) {
	schema, err := GetKeySchema(key)
	if err != nil {
		return ParsedValue{}, err
	}
	return validateAgainstSchema(schema, value)
}

func validateAgainstSchema(schema ConfigKeySchema, value string) (ParsedValue, error) {
	switch schema.Type {
	case TypeBool:
		return parseBoolValue(value)
	case TypeEnum:
		return parseEnumValue(schema, value)
	case TypeEnumList:
		return parseEnumList(schema, value)
	case TypeString:
		return parseCodePrefix(value)
	default:
		return ParsedValue{}, fmt.Errorf("unsupported type: %v", schema.Type)
	}
}

func parseBoolValue(value string) (ParsedValue, error) {
	switch strings.ToLower(value) {
	case "true":
		return ParsedValue{Raw: value, Parsed: true, Type: TypeBool}, nil
	case "false":
		return ParsedValue{Raw: value, Parsed: false, Type: TypeBool}, nil
	default:
		return ParsedValue{}, fmt.Errorf("invalid boolean: %q (expected true or false)", value)
	}
}

func parseEnumValue(schema ConfigKeySchema, value string) (ParsedValue, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if slices.Contains(schema.AllowedValues, v) {
		return ParsedValue{Raw: value, Parsed: v, Type: TypeEnum}, nil
	}
	return ParsedValue{}, fmt.Errorf(
		"invalid value: %q (valid options: %s)",
		value,
		strings.Join(schema.AllowedValues, ", "),
	)
}

// parseEnumList accepts a comma-separated subset of the allowed values.
// An empty string clears the list.
func parseEnumList(schema ConfigKeySchema, value string) (ParsedValue, error) {
	items := []string{}
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if !slices.Contains(schema.AllowedValues, part) {
			return ParsedValue{}, fmt.Errorf(
				"invalid list item: %q (valid options: %s)",
				part,
				strings.Join(schema.AllowedValues, ", "),
			)
		}
		if !slices.Contains(items, part) {
			items = append(items, part)
		}
	}
	return ParsedValue{Raw: value, Parsed: items, Type: TypeEnumList}, nil
}

var codePrefixPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)

func parseCodePrefix(value string) (ParsedValue, error) {
	if !codePrefixPattern.MatchString(value) {
		return ParsedValue{}, fmt.Errorf("invalid code prefix %q: 1 to 10 ASCII letters or digits", value)
	}
	return ParsedValue{Raw: value, Parsed: value, Type: TypeString}, nil
}
