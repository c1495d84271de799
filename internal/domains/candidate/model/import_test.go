package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportRowGet_TrimsValues(t *testing.T) {
	row := ImportRow{"Division": "  Dhaka  "}
	assert.Equal(t, "Dhaka", row.Get(FieldDivision))
}

func TestImportRowGet_AbsentFieldIsEmpty(t *testing.T) {
	row := ImportRow{"Division": "Dhaka"}
	assert.Equal(t, "", row.Get(FieldVision))
}

func TestImportRowGet_HeaderVariants(t *testing.T) {
	// Both circulating spellings of the Bengali personal-profile header
	// resolve to the same field.
	primary := ImportRow{"ব্যাক্তিগত_জীবন": "primary spelling"}
	alternate := ImportRow{"ব্যক্তিগত_জীবন": "alternate spelling"}

	assert.Equal(t, "primary spelling", primary.Get(FieldPersonalProfileBn))
	assert.Equal(t, "alternate spelling", alternate.Get(FieldPersonalProfileBn))
}

func TestImportRowGet_VariantOrder(t *testing.T) {
	// When both spellings are present the first variant wins.
	row := ImportRow{
		"প্রার্থির_নাম": "first",
		"প্রার্থীর_নাম": "second",
	}
	assert.Equal(t, "first", row.Get(FieldFullNameBn))
}

func TestProfilePatchColumns(t *testing.T) {
	vision := "new vision"
	no := 7
	patch := &ProfilePatch{Vision: &vision, ConstituencyNo: &no}

	cols, vals := patch.Columns()
	assert.Equal(t, []string{"constituency_no", "vision"}, cols)
	assert.Equal(t, []any{7, "new vision"}, vals)
	assert.False(t, patch.IsEmpty())

	empty := &ProfilePatch{}
	assert.True(t, empty.IsEmpty())
}
