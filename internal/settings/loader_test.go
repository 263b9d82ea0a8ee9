package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deep-cloner/cloner"
	"deep-cloner/diagnostic"
	"deep-cloner/options"
	"deep-cloner/value"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
fallback_rule: sequence
inheritance_chain_policy: clone
max_depth: 42
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.NotNil(t, f.FallbackRule)
	assert.Equal(t, "sequence", *f.FallbackRule)
	require.NotNil(t, f.MaxDepth)
	assert.Equal(t, 42, *f.MaxDepth)
	assert.Empty(t, Validate(f))

	o, err := f.Override()
	require.NoError(t, err)

	cfg := cloner.Merge(cloner.DefaultConfig(), o)
	assert.Equal(t, cloner.SequenceRuleID, cfg.FallbackRuleID)
	assert.Equal(t, options.PolicyClone, cfg.Policy)
	assert.Equal(t, 42, cfg.MaxDepth)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.Nil(t, f.FallbackRule)
	assert.Nil(t, f.MaxDepth)

	o, err := f.Override()
	require.NoError(t, err)
	assert.Equal(t, cloner.DefaultConfig().Policy, cloner.Merge(cloner.DefaultConfig(), o).Policy)
	assert.Nil(t, o.Policy)
	assert.Nil(t, o.FallbackRuleID)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("version: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings YAML")
}

func TestOverride_UnsupportedVersion(t *testing.T) {
	f := &File{Version: "2"}

	_, err := f.Override()
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestRuleID(t *testing.T) {
	assert.Equal(t, cloner.PrimitiveRuleID, RuleID("primitive"))
	assert.Equal(t, cloner.RecordRuleID, RuleID("record"))
	assert.Equal(t, cloner.SequenceRuleID, RuleID("sequence"))
	assert.Equal(t, value.StringKey("custom"), RuleID("custom"))
	assert.True(t, RuleID("").IsZero())
}

func TestValidate(t *testing.T) {
	empty := ""
	negative := -1

	f := &File{
		Version:                CurrentVersion,
		FallbackRule:           &empty,
		InheritanceChainPolicy: "SIDEWAYS",
		MaxDepth:               &negative,
	}

	res := Validate(f)
	require.Len(t, res, 3)
	assert.False(t, res.HasErrors())
	assert.Equal(t, diagnostic.CodeBadPolicyValue, res[0].Code)
	assert.Equal(t, "inheritance_chain_policy SIDEWAYS is not recognized, REFERENCE will be used", res[0].Message)
	assert.Equal(t, diagnostic.CodeFallbackMissing, res[1].Code)
	assert.Equal(t, diagnostic.DiagnosticInfo, res[2].Severity)

	assert.True(t, Validate(nil).HasErrors())
}

func TestValidate_Suggestions(t *testing.T) {
	fallback := "recrod"

	res := Validate(&File{
		Version:                CurrentVersion,
		FallbackRule:           &fallback,
		InheritanceChainPolicy: "refrence",
	})
	require.Len(t, res, 2)

	assert.Equal(t, diagnostic.CodeBadPolicyValue, res[0].Code)
	assert.Equal(t,
		"inheritance_chain_policy refrence is not recognized (did you mean REFERENCE?), REFERENCE will be used",
		res[0].Message)
	assert.Equal(t, "REFERENCE", res[0].Info["suggestion"])

	assert.Equal(t, diagnostic.DiagnosticInfo, res[1].Severity)
	assert.Equal(t, "fallback_rule recrod is not a built-in rule (did you mean record?)", res[1].Message)
}

func TestValidate_CustomFallbackIsQuiet(t *testing.T) {
	fallback := "my-custom-handler"

	res := Validate(&File{Version: CurrentVersion, FallbackRule: &fallback})
	assert.Empty(t, res)
}

func TestWriteFileRoundTrip(t *testing.T) {
	depth := 7
	fallback := "record"
	path := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, WriteFile(&File{
		Version:                CurrentVersion,
		FallbackRule:           &fallback,
		InheritanceChainPolicy: string(options.PolicyExclude),
		MaxDepth:               &depth,
	}, path))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EXCLUDE", f.InheritanceChainPolicy)
	assert.Equal(t, 7, *f.MaxDepth)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
