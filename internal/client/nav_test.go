package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackOpenSkipsConsecutiveDuplicate(t *testing.T) {
	var s Stack
	s.Open("Supplies", "Поставки")
	s.Open("Suppliers", "Поставщики")
	s.Open("Suppliers", "Поставщики")

	assert.Equal(t, 2, s.Depth())
	top, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Suppliers", top.View)
}

func TestStackBackStopsAtBottom(t *testing.T) {
	var s Stack
	_, ok := s.Current()
	assert.False(t, ok)

	s.Open("Reports", "Отчёты")
	s.Open("Supplies", "Поставки")
	s.Open("Materials", "Материалы")

	top, ok := s.Back()
	require.True(t, ok)
	assert.Equal(t, "Supplies", top.View)

	s.Back()
	top, ok = s.Back() // already at the bottom
	require.True(t, ok)
	assert.Equal(t, "Reports", top.View)
	assert.Equal(t, 1, s.Depth())
}

func TestStackBackAbandonsPick(t *testing.T) {
	var s Stack
	s.Open("Supplies", "Поставки")
	s.Open("Suppliers", "Поставщики")
	s.Pick = &PickState{FieldKey: "supplier_id", Controller: "Suppliers"}

	s.Back()
	assert.Nil(t, s.Pick)
}

func TestStackJumpTo(t *testing.T) {
	var s Stack
	s.Open("Reports", "Отчёты")
	s.Open("Supplies", "Поставки")
	s.Open("Suppliers", "Поставщики")
	s.Pick = &PickState{FieldKey: "supplier_id", Controller: "Suppliers"}

	require.True(t, s.JumpTo("Supplies"))
	assert.Equal(t, 2, s.Depth())
	assert.Nil(t, s.Pick)
	top, _ := s.Current()
	assert.Equal(t, "Supplies", top.View)

	// unknown view leaves the trail as is
	assert.False(t, s.JumpTo("Equipment"))
	assert.Equal(t, 2, s.Depth())
}

func TestStackTrailIsACopy(t *testing.T) {
	var s Stack
	s.Open("Reports", "Отчёты")
	s.Open("Users", "Пользователи")

	trail := s.Trail()
	require.Len(t, trail, 2)
	trail[0].View = "hacked"

	fresh := s.Trail()
	assert.Equal(t, "Reports", fresh[0].View)
	assert.Equal(t, "Users", fresh[1].View)
}
