package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mtrltest "github.com/go-mtrl/mtrl/pkg/testing"
)

func TestChip_Defaults(t *testing.T) {
	tester := newTester(t)
	chip, err := NewChip(ChipConfig{Document: tester.Document(), Text: "Apple"})
	require.NoError(t, err)

	el := chip.Element()
	assert.True(t, el.HasClass("mtrl-chip--filled"))
	assert.Equal(t, "button", el.Attr("role"))
	assert.Equal(t, "0", el.Attr("tabindex"))
	assert.Equal(t, "Apple", chip.Value())
	assert.Equal(t, "Apple", el.Attr("data-value"))
	assert.Equal(t, "false", el.Attr("aria-selected"))
	assert.False(t, chip.IsSelected())
}

func TestChip_FilterTogglesOnClick(t *testing.T) {
	tester := newTester(t)
	chip, err := NewChip(ChipConfig{Document: tester.Document(), Variant: ChipFilter, Text: "Beta", Value: "b"})
	require.NoError(t, err)
	tester.Mount(chip.Element())

	changes := collect(chip, EventChange)
	chip.Element().Click()
	assert.True(t, chip.IsSelected())
	assert.True(t, chip.Element().HasClass("mtrl-chip--selected"))
	assert.Equal(t, "true", chip.Element().Attr("aria-selected"))

	tester.KeyDown(chip.Element(), "Enter")
	assert.False(t, chip.IsSelected())

	chip.SetSelected(false)
	assert.Equal(t, []any{
		ChipChangeDetail{Selected: true, Value: "b"},
		ChipChangeDetail{Selected: false, Value: "b"},
	}, *changes)
}

func TestChip_AssistIsNotSelectable(t *testing.T) {
	tester := newTester(t)
	chip, err := NewChip(ChipConfig{Document: tester.Document(), Variant: ChipAssist, Text: "Help"})
	require.NoError(t, err)

	clicks := collect(chip, EventClick)
	chip.Element().Click()
	assert.Len(t, *clicks, 1)
	assert.False(t, chip.IsSelected())
}

func TestChip_DisabledIgnoresActivation(t *testing.T) {
	tester := newTester(t)
	chip, err := NewChip(ChipConfig{Document: tester.Document(), Variant: ChipFilter, Text: "Off", Disabled: true})
	require.NoError(t, err)
	assert.Equal(t, "-1", chip.Element().Attr("tabindex"))

	clicks := collect(chip, EventClick)
	chip.Element().Click()
	assert.Empty(t, *clicks)
	assert.False(t, chip.IsSelected())

	chip.Enable()
	assert.Equal(t, "0", chip.Element().Attr("tabindex"))
	chip.Element().Click()
	assert.True(t, chip.IsSelected())
}

func TestChip_TrailingIconRemoves(t *testing.T) {
	tester := newTester(t)
	chip, err := NewChip(ChipConfig{Document: tester.Document(), Variant: ChipInput, Text: "Tag", TrailingIcon: "x"})
	require.NoError(t, err)
	tester.Mount(chip.Element())
	assert.True(t, chip.Element().HasClass("mtrl-chip--with-trailing-icon"))

	removes := collect(chip, EventRemove)
	clicks := collect(chip, EventClick)
	require.NoError(t, tester.ClickFinder(mtrltest.ByClass("mtrl-chip-trailing-icon")))
	assert.Equal(t, []any{chip}, *removes)
	assert.Empty(t, *clicks)

	tester.KeyDown(chip.Element(), "Backspace")
	assert.Len(t, *removes, 2)

	chip.SetTrailingIcon("")
	assert.Nil(t, chip.TrailingIcon())
	tester.KeyDown(chip.Element(), "Delete")
	assert.Len(t, *removes, 2)
}

func TestChip_TapOnTouchDevices(t *testing.T) {
	tester := newTester(t, mtrltest.WithTouch())
	chip, err := NewChip(ChipConfig{Document: tester.Document(), Text: "Touch"})
	require.NoError(t, err)
	tester.Mount(chip.Element())

	taps := collect(chip, "tap")
	tester.Tap(chip.Element())
	assert.Len(t, *taps, 1)
}
