package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gospellscan/pkg/spellconfig"
)

// envVarPrefix is the prefix for all gospellscan environment variables.
const envVarPrefix = "GOSPELLSCAN_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"IGNORE_COMMENTS":          {field: "ignore_standard_comments", typ: envTypeBool},
	"IGNORE_DOC_COMMENTS":      {field: "ignore_doc_comments", typ: envTypeBool},
	"IGNORE_STRINGS":           {field: "ignore_strings", typ: envTypeBool},
	"IGNORE_FORMAT_SPECIFIERS": {field: "ignore_format_specifiers", typ: envTypeBool},
	"IGNORE_FILENAMES":         {field: "ignore_filenames_and_email", typ: envTypeBool},
	"IGNORE_WORDS_WITH_DIGITS": {field: "ignore_words_with_digits", typ: envTypeBool},
	"IGNORE_ALL_UPPERCASE":     {field: "ignore_all_uppercase", typ: envTypeBool},
	"MNEMONIC":                 {field: "mnemonic", typ: envTypeString},
	"CHARACTER_CLASS":          {field: "ignored_character_class", typ: envTypeString},
	"IGNORED_XML_ELEMENTS":     {field: "ignored_xml_elements", typ: envTypeSlice},
	"SPELL_CHECKED_ATTRIBUTES": {field: "spell_checked_attributes", typ: envTypeSlice},
	"IGNORED_ESCAPED_WORDS":    {field: "ignored_escaped_words", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOSPELLSCAN_ (e.g., GOSPELLSCAN_MNEMONIC).
func LoadFromEnv(cfg *spellconfig.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *spellconfig.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *spellconfig.Config, field, value string) error {
	switch field {
	case "mnemonic":
		if value != "&" && value != "_" {
			value = "&"
		}
		cfg.Mnemonic = value
	case "ignored_character_class":
		cfg.IgnoredCharacterClass = spellconfig.CharacterClass(value).Normalize()
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *spellconfig.Config, field string, value bool) error {
	switch field {
	case "ignore_standard_comments":
		cfg.IgnoreStandardComments = value
	case "ignore_doc_comments":
		cfg.IgnoreDocComments = value
	case "ignore_strings":
		cfg.IgnoreStrings = value
	case "ignore_format_specifiers":
		cfg.IgnoreFormatSpecifiers = value
	case "ignore_filenames_and_email":
		cfg.IgnoreFilenamesAndEMail = value
	case "ignore_words_with_digits":
		cfg.IgnoreWordsWithDigits = value
	case "ignore_all_uppercase":
		cfg.IgnoreAllUppercase = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *spellconfig.Config, field string, value []string) error {
	switch field {
	case "ignored_xml_elements":
		cfg.IgnoredXMLElements = value
	case "spell_checked_attributes":
		cfg.SpellCheckedAttributes = value
	case "ignored_escaped_words":
		cfg.IgnoredEscapedWords = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOSPELLSCAN_IGNORE_COMMENTS":          "Skip standard // comments: true or false",
		"GOSPELLSCAN_IGNORE_DOC_COMMENTS":      "Skip XML doc comments: true or false",
		"GOSPELLSCAN_IGNORE_STRINGS":           "Skip string literals: true or false",
		"GOSPELLSCAN_IGNORE_FORMAT_SPECIFIERS": "Skip format specifiers inside words: true or false",
		"GOSPELLSCAN_IGNORE_FILENAMES":         "Skip filename- and email-looking words: true or false",
		"GOSPELLSCAN_IGNORE_WORDS_WITH_DIGITS": "Skip words containing digits: true or false",
		"GOSPELLSCAN_IGNORE_ALL_UPPERCASE":     "Skip all-uppercase words: true or false",
		"GOSPELLSCAN_MNEMONIC":                 "Mnemonic character: & or _",
		"GOSPELLSCAN_CHARACTER_CLASS":          "Ignored character class: none, non-ascii, non-latin",
		"GOSPELLSCAN_IGNORED_XML_ELEMENTS":     "Comma-separated XML elements whose text is skipped",
		"GOSPELLSCAN_SPELL_CHECKED_ATTRIBUTES": "Comma-separated XML attributes whose values are checked",
		"GOSPELLSCAN_IGNORED_ESCAPED_WORDS":    "Comma-separated backslash-escaped words to skip",
	}
}
