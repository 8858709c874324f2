package deltamd

// DecodeOption configures decoding behavior.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	skipFrontmatter    bool
	referenceValidator ReferenceValidator
}

// WithReferenceValidator installs a predicate deciding which @tokens become
// reference embeds. Without one, every token is accepted.
func WithReferenceValidator(v ReferenceValidator) DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.referenceValidator = v
	}
}

// WithoutFrontmatter drops a leading frontmatter block before decoding.
func WithoutFrontmatter() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.skipFrontmatter = true
	}
}

// EncodeOption configures encoding behavior.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	strict bool
}

// WithStrict makes Encode fail on attributes or embeds that have no native
// Markdown form instead of substituting a fallback.
func WithStrict(enabled bool) EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.strict = enabled
	}
}
