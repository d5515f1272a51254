package integration

import "fmt"

// Package integration provides named presets for the bytestream tool. A preset
// bundles the knobs that usually change together (initial writer capacity,
// default charset, input size limit) so a single --preset flag can replace a
// handful of individual flags.
//
// Usage:
//   cfg := integration.CompactPreset() // small inputs, ASCII text
//   cfg := integration.BulkPreset()    // large binary blobs
//   cfg := integration.LegacyPreset()  // Latin-1 text dumps

// PresetConfig captures the tunable parameters that vary across presets.
type PresetConfig struct {
	Name           string // human-readable identifier (e.g., "compact", "bulk")
	WriterCapacity int    // initial capacity hint handed to bytesio.NewWriter
	Charset        string // charset used by "decode" when --charset is not given
	MaxInputBytes  int    // inputs larger than this are rejected before loading
	MaxSliceBytes  int    // upper bound for a single "slice" result
}

func DefaultPreset() PresetConfig {
	return PresetConfig{
		Name:           "default",
		WriterCapacity: 1 << 10, // 1KB: most hex arguments fit without growing
		Charset:        "UTF-8",
		MaxInputBytes:  1 << 20, // 1MB
		MaxSliceBytes:  1 << 16,
	}
}

// CompactPreset is tuned for short inputs typed on the command line.
func CompactPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "compact"
	cfg.WriterCapacity = 1 << 8
	cfg.Charset = "US-ASCII"
	cfg.MaxInputBytes = 1 << 16
	cfg.MaxSliceBytes = 1 << 10
	return cfg
}

// BulkPreset is tuned for large files loaded with --input.file. The writer
// starts big so loading does not go through repeated doublings.
func BulkPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "bulk"
	cfg.WriterCapacity = 1 << 16
	cfg.MaxInputBytes = 1 << 26 // 64MB
	cfg.MaxSliceBytes = 1 << 20
	return cfg
}

// LegacyPreset decodes text as ISO-8859-1, which maps every byte and so never
// produces replacement characters.
func LegacyPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "legacy"
	cfg.WriterCapacity = 1 << 12
	cfg.Charset = "ISO-8859-1"
	return cfg
}

// GetPresetByName looks up a preset by its string identifier.
func GetPresetByName(name string) (PresetConfig, error) {
	switch name {
	case "compact":
		return CompactPreset(), nil
	case "bulk":
		return BulkPreset(), nil
	case "legacy":
		return LegacyPreset(), nil
	case "default", "":
		return DefaultPreset(), nil
	default:
		return PresetConfig{}, fmt.Errorf("unknown preset: %q (valid: compact, bulk, legacy, default)", name)
	}
}

// ApplyPreset merges preset into target. Zero-valued preset fields leave the
// target untouched.
func ApplyPreset(target *PresetConfig, preset PresetConfig) {
	if preset.WriterCapacity > 0 {
		target.WriterCapacity = preset.WriterCapacity
	}
	if preset.Charset != "" {
		target.Charset = preset.Charset
	}
	if preset.MaxInputBytes > 0 {
		target.MaxInputBytes = preset.MaxInputBytes
	}
	if preset.MaxSliceBytes > 0 {
		target.MaxSliceBytes = preset.MaxSliceBytes
	}
	if preset.Name != "" {
		target.Name = preset.Name
	}
}
