package environment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_FileOnly(t *testing.T) {
	// Arrange
	p := writeEnvFile(t, "ALCHEMY_URL=https://rpc.example\nPRIVATE_KEY=abc123\n# comment\nETHERSCAN_KEY=\"quoted key\"\n")

	// Act
	snap, err := Load(p, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Snapshot{
		"ALCHEMY_URL":   "https://rpc.example",
		"PRIVATE_KEY":   "abc123",
		"ETHERSCAN_KEY": "quoted key",
	}, snap)
}

func TestLoad_ProcessEnvironmentWins(t *testing.T) {
	// Arrange
	p := writeEnvFile(t, "PRIVATE_KEY=fromfile\nETHERSCAN_KEY=fromfile\n")

	// Act
	snap, err := Load(p, []string{"PRIVATE_KEY=fromprocess", "HOME=/root"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "fromprocess", snap["PRIVATE_KEY"])
	assert.Equal(t, "fromfile", snap["ETHERSCAN_KEY"])
	assert.Equal(t, "/root", snap["HOME"])
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	// Act
	snap, err := Load(filepath.Join(t.TempDir(), "absent.env"), []string{"ALCHEMY_URL=https://rpc.example"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Snapshot{"ALCHEMY_URL": "https://rpc.example"}, snap)
}

func TestLoad_NoFile(t *testing.T) {
	snap, err := Load("", nil)

	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestLoad_UnreadableFile(t *testing.T) {
	// A directory cannot be read as a dotenv file.
	snap, err := Load(t.TempDir(), nil)

	require.Error(t, err)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, ErrReadEnvFile)
}

func TestLoad_DoesNotTouchProcessEnvironment(t *testing.T) {
	t.Setenv("TOOLCONFIG_TEST_MARKER", "")
	p := writeEnvFile(t, "TOOLCONFIG_TEST_MARKER=set-by-file\n")

	_, err := Load(p, nil)
	require.NoError(t, err)

	assert.Empty(t, os.Getenv("TOOLCONFIG_TEST_MARKER"))
}

func TestParse(t *testing.T) {
	snap, err := Parse("A=1\nexport B=two\n")

	require.NoError(t, err)
	assert.Equal(t, Snapshot{"A": "1", "B": "two"}, snap)
}

func TestFromEnviron(t *testing.T) {
	snap := FromEnviron([]string{"A=1", "B=x=y", "C=", "broken", "=nokey"})

	assert.Equal(t, Snapshot{"A": "1", "B": "x=y", "C": ""}, snap)
}

func TestSnapshot_WithAndWithout(t *testing.T) {
	orig := Snapshot{"A": "1", "B": "2"}

	with := orig.With("C", "3")
	without := orig.Without("A")

	assert.Equal(t, Snapshot{"A": "1", "B": "2", "C": "3"}, with)
	assert.Equal(t, Snapshot{"B": "2"}, without)
	assert.Equal(t, Snapshot{"A": "1", "B": "2"}, orig)

	v, ok := with.Lookup("C")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	_, ok = without.Lookup("A")
	assert.False(t, ok)
}

// TestLoad_VariableExpansion pins how '$' in values is treated: expanded in
// double quotes, literal in single quotes.
func TestLoad_VariableExpansion(t *testing.T) {
	// Arrange
	p := writeEnvFile(t, "BASE=abc\n"+
		"PRIVATE_KEY=\"${BASE}123\"\n"+
		"ALCHEMY_URL=\"https://rpc.example/v2/k$TOOLCONFIG_NO_SUCH_VARIABLE\"\n"+
		"ETHERSCAN_KEY='k$HOME'\n")

	// Act
	snap, err := Load(p, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "abc123", snap["PRIVATE_KEY"])
	assert.Equal(t, "https://rpc.example/v2/k", snap["ALCHEMY_URL"])
	assert.Equal(t, "k$HOME", snap["ETHERSCAN_KEY"])
}
