package uimeta

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsMarshalPreservesOrder(t *testing.T) {
	cols := Columns{
		{Key: "id", Label: "ID"},
		{Key: "date_human", Label: "Дата"},
		{Key: "name", Label: "Название"},
	}
	data, err := json.Marshal(cols)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"ID","date_human":"Дата","name":"Название"}`, string(data))

	var back Columns
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, cols, back)
}

func TestFormRoundTrip(t *testing.T) {
	form := Form{
		{Key: "supplier_id", Field: Field{Text: "Поставщик", Type: TypeDictionary, Controller: "Suppliers"}},
		{Key: "quantity", Field: Field{Text: "Количество", Type: TypeNumber}},
		{Key: "role", Field: Field{Text: "Роль", Type: TypeRadioImages, Values: Options{
			{Key: "admin", Label: "Администратор"},
			{Key: "acc", Label: "Учётчик"},
		}}},
	}

	data, err := json.Marshal(form)
	require.NoError(t, err)

	var back Form
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 3)
	assert.Equal(t, form, back)

	field, ok := back.Get("role")
	require.True(t, ok)
	assert.Equal(t, Options{
		{Key: "admin", Label: "Администратор"},
		{Key: "acc", Label: "Учётчик"},
	}, field.Values)

	_, ok = back.Get("missing")
	assert.False(t, ok)
}

func TestFieldDefaultTodayRenderedAtMarshal(t *testing.T) {
	form := Form{
		{Key: "date", Field: Field{Text: "Дата", Type: TypeDate, DefaultToday: true}},
	}

	data, err := json.Marshal(form)
	require.NoError(t, err)

	var back Form
	require.NoError(t, json.Unmarshal(data, &back))
	field, ok := back.Get("date")
	require.True(t, ok)
	assert.Equal(t, time.Now().Format(DisplayDate), field.Default)
}

func TestUnmarshalRejectsNonObject(t *testing.T) {
	var cols Columns
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &cols))

	var form Form
	assert.Error(t, json.Unmarshal([]byte(`"text"`), &form))
}

func TestRegistryDocumentOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Descriptor{Key: "Reports", Controller: "reports", TitleMain: "Отчёты"})
	reg.Register(Descriptor{Key: "Materials", Controller: "materials", TitleMain: "Материалы"})

	assert.Equal(t, []string{"Reports", "Materials"}, reg.Keys())

	data, err := json.Marshal(reg)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []string{"Reports", "Materials"}, doc.Keys())

	desc, ok := doc.Get("Materials")
	require.True(t, ok)
	assert.Equal(t, "materials", desc.Controller)
	assert.Equal(t, "Materials", desc.Key)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Descriptor{Key: "Users"})
	assert.Panics(t, func() { reg.Register(Descriptor{Key: "Users"}) })
	assert.Panics(t, func() { reg.Register(Descriptor{}) })
}
