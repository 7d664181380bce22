package errors

import (
	"regexp"
	"unicode"
)

// foamWordRegex matches a valid OpenFOAM dictionary word. blockMeshDict
// identifiers (patch names, cell zones) are emitted verbatim into the dict,
// so anything a FOAM parser would choke on must be rejected up front.
var foamWordRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._-]*$`)

// ValidatePatchName validates a patch name for use in a blockMeshDict.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Must match the FOAM word grammar (letters, digits, '.', '_', '-')
//   - Maximum length of 128 characters
func ValidatePatchName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "patch name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidManifest, "patch name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidManifest, "patch name contains invalid characters: %q", name)
		}
	}

	if !foamWordRegex.MatchString(name) {
		return New(ErrCodeInvalidManifest, "invalid patch name: %q", name)
	}

	return nil
}

// ValidateCellZone validates a cell zone label. An empty label is allowed
// (the block then belongs to no zone); a non-empty label must follow the
// same word grammar as patch names.
func ValidateCellZone(zone string) error {
	if zone == "" {
		return nil
	}
	if !foamWordRegex.MatchString(zone) {
		return New(ErrCodeInvalidManifest, "invalid cell zone: %q", zone)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is asked to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
