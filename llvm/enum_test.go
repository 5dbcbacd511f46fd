package llvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	red color = iota
	green
	blue
)

func newColorTable() *enumTable[color, uint8] {
	return newEnumTable[color, uint8]("color",
		entry[uint8]{"red", 10},
		entry[uint8]{"green", 20},
		entry[uint8]{"blue", 30},
	)
}

func TestEnumTable_Bidirectional(t *testing.T) {
	tbl := newColorTable()

	for _, c := range []color{red, green, blue} {
		assert.Equal(t, c, tbl.fromNative(tbl.native(c)))
	}

	assert.Equal(t, uint8(20), tbl.native(green))
	assert.Equal(t, "blue", tbl.str(blue))
	assert.Equal(t, "color(7)", tbl.str(7))
}

func TestEnumTable_Invalid(t *testing.T) {
	tbl := newColorTable()

	assert.PanicsWithValue(t, "llvm: invalid color 3", func() { tbl.native(3) })
	assert.PanicsWithValue(t, "llvm: unknown native color 99", func() { tbl.fromNative(99) })
	assert.PanicsWithValue(t, "llvm: duplicate native value for color green", func() {
		newEnumTable[color, uint8]("color", entry[uint8]{"red", 1}, entry[uint8]{"green", 1})
	})
}

func TestEnumTable_Parse(t *testing.T) {
	tbl := newColorTable()

	c, err := tbl.parse("green")
	require.NoError(t, err)
	assert.Equal(t, green, c)

	_, err = tbl.parse("purple")
	assert.EqualError(t, err, "unknown color `purple`")
}

func TestEnumTables_Total(t *testing.T) {
	// Every member of the package's enumerations has a name.
	assert.Len(t, typeKinds.names, int(TargetExtTypeKind)+1)
	assert.Len(t, opcodes.names, int(CatchSwitchOpcode)+1)
	assert.Len(t, intPredicates.names, int(IntSLE)+1)
	assert.Len(t, realPredicates.names, int(RealTrue)+1)
	assert.Len(t, linkages.names, int(CommonLinkage)+1)
	assert.Len(t, optLevels.names, int(CodeGenLevelAggressive)+1)
	assert.Len(t, relocModes.names, int(RelocROPIRWPI)+1)
	assert.Len(t, codeModels.names, int(CodeModelLarge)+1)
	assert.Len(t, fileTypes.names, int(AssemblyFile)+1)

	assert.Equal(t, "getelementptr", GetElementPtrOpcode.String())
	assert.True(t, BitCastOpcode.IsCast())
	assert.False(t, ICmpOpcode.IsCast())
}
