package nomen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAliases() AliasMap {
	return AliasMap{
		"GAMMA_RAY":    {"GR", "SGR", "CGR"},
		"BULK_DENSITY": {"RHOB", "RHOZ", "DEN"},
		"SONIC":        {"DT", "DTC", "AC"},
		"GAMMA_RAY_D":  {"GRD"},
	}
}

func TestLoadAliases(t *testing.T) {
	yamlDoc := `
log_mnemonic_aliases:
  GAMMA_RAY: [GR, SGR]
  bulk_density:
    - rhob
    - " den "
`
	m, err := LoadAliases(strings.NewReader(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"GR", "SGR"}, m["GAMMA_RAY"])
	assert.Equal(t, []string{"RHOB", "DEN"}, m["BULK_DENSITY"], "aliases are uppercased and trimmed")
}

func TestLoadAliasesErrors(t *testing.T) {
	_, err := LoadAliases(strings.NewReader("log_mnemonic_aliases: [not, a, map]"))
	assert.ErrorIs(t, err, ErrBadAliasFile)

	_, err = LoadAliases(strings.NewReader("unrelated: 1"))
	assert.ErrorIs(t, err, ErrBadAliasFile, "missing section must be rejected")
}

func TestLogTypeLongestPrefixWins(t *testing.T) {
	n := New(testAliases())

	assert.Equal(t, "GAMMA_RAY", n.LogType("GR"))
	assert.Equal(t, "GAMMA_RAY", n.LogType("gr_edtc"), "prefix match is case-insensitive")
	assert.Equal(t, "GAMMA_RAY_D", n.LogType("GRD"), "longer alias beats shorter prefix")
	assert.Equal(t, "SONIC", n.LogType("DTC0"))
	assert.Equal(t, "NPHI", n.LogType("NPHI"), "unmatched mnemonics classify as themselves")
}

func TestLogTypeEqualLengthTieIsDeterministic(t *testing.T) {
	// Both types carry a two-letter alias prefixing the mnemonic; the
	// canonical that sorts first must win every time.
	n := New(AliasMap{
		"DEEP_RESISTIVITY":    {"RT"},
		"SHALLOW_RESISTIVITY": {"RT"},
	})

	for range 20 {
		assert.Equal(t, "DEEP_RESISTIVITY", n.LogType("RT90"))
	}
}

func TestSetLogType(t *testing.T) {
	n := New(testAliases())

	n.SetLogType("HGR", "GAMMA_RAY")
	assert.Equal(t, "GAMMA_RAY", n.LogType("HGR"))

	// Re-registering is a no-op, not a duplicate.
	n.SetLogType("HGR", "GAMMA_RAY")
	assert.Equal(t, "GAMMA_RAY", n.LogType("HGR"))
}

func TestLogTypeMap(t *testing.T) {
	n := New(testAliases())

	got := n.LogTypeMap([]string{"RHOZ", "DT", "XYZ"})
	assert.Equal(t, map[string]string{
		"RHOZ": "BULK_DENSITY",
		"DT":   "SONIC",
		"XYZ":  "XYZ",
	}, got)
}

func TestNewCopiesAliasMap(t *testing.T) {
	src := testAliases()
	n := New(src)

	src["GAMMA_RAY"][0] = "ZZ"
	assert.Equal(t, "GAMMA_RAY", n.LogType("GR"), "classifier must not share storage with caller map")
}
