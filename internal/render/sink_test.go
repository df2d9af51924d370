package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Emit(DrawTile(1, 2, 1))
	r.Emit(Notification("Your turn"))
	r.Emit(SetPlayerMana(0, 3))
	r.Emit(Notification("Mana not enough"))

	assert.Len(t, r.Directives(), 4)
	assert.Len(t, r.OfKind(KindDrawTile), 1)
	assert.Equal(t, []string{"Your turn", "Mana not enough"}, r.Notifications())

	drained := r.Drain()
	assert.Len(t, drained, 4)
	assert.Empty(t, r.Directives())

	r.Emit(DeleteCard(2))
	r.Reset()
	assert.Empty(t, r.Directives())
}

func TestTextSinkSkipsTilesUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf)
	s.Emit(DrawTile(0, 0, 0))
	s.Emit(Notification("hello"))
	assert.Equal(t, "notify: hello\n", buf.String())

	buf.Reset()
	s.Verbose = true
	s.Emit(DrawTile(3, 4, 2))
	assert.Equal(t, "drawTile (3,4) mode=2\n", buf.String())
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	Multi{a, b, Discard{}}.Emit(Notification("x"))
	assert.Len(t, a.Directives(), 1)
	assert.Len(t, b.Directives(), 1)
}

func TestDirectiveString(t *testing.T) {
	u := Unit{ID: 7, Name: "Ironcliff Guardian"}
	tests := []struct {
		d    Directive
		want string
	}{
		{DrawUnit(u, 2, 3), "drawUnit 7 at (2,3)"},
		{MoveUnitToTile(u, 4, 1, true), "moveUnitToTile 7 -> (4,1) yfirst=true"},
		{SetUnitHealth(u, 9), "setUnitHealth 7 = 9"},
		{SetUnitAttack(u, 5), "setUnitAttack 7 = 5"},
		{PlayUnitAnimation(u, AnimAttack), "playUnitAnimation 7 attack"},
		{DrawCard(Card{Name: "Truestrike"}, 1, 1), "drawCard Truestrike slot=1 mode=1"},
		{DeleteCard(4), "deleteCard slot=4"},
		{DeleteUnit(u), "deleteUnit 7"},
		{SetPlayerHealth(1, 18), "setPlayerHealth P2 = 18"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.d.String())
	}
}
