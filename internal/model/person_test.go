package model

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPersonCopiesFields(t *testing.T) {
	req := &AddPersonRequest{FirstName: "Jane", LastName: "Doe", Age: 30}

	person := NewPerson(req)

	assert.Equal(t, "Jane", person.FirstName)
	assert.Equal(t, "Doe", person.LastName)
	assert.Equal(t, 30, person.Age)
	assert.NotEmpty(t, person.ID)

	_, err := ulid.ParseStrict(person.ID)
	assert.NoError(t, err)
}

func TestNewPersonFreshIDs(t *testing.T) {
	req := &AddPersonRequest{FirstName: "Jane", LastName: "Doe", Age: 30}

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewPerson(req).ID
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewIDSortsInCreationOrder(t *testing.T) {
	ids := make([]string, 500)
	for i := range ids {
		ids[i] = NewID()
	}

	assert.True(t, sort.StringsAreSorted(ids))
	assert.Len(t, ids[0], 26)
}

func TestAddPersonRequestValidate(t *testing.T) {
	assert.NoError(t, (&AddPersonRequest{FirstName: "J", LastName: "D", Age: 1}).Validate())
	assert.Error(t, (&AddPersonRequest{FirstName: "", LastName: "D", Age: 1}).Validate())
	assert.Error(t, (&AddPersonRequest{FirstName: "J", LastName: "", Age: 1}).Validate())
	assert.Error(t, (&AddPersonRequest{FirstName: "J", LastName: "D", Age: 0}).Validate())
	assert.Error(t, (&AddPersonRequest{FirstName: "J", LastName: "D", Age: -4}).Validate())
}

func TestAddPersonRequestWireNames(t *testing.T) {
	var req AddPersonRequest
	require.NoError(t, json.Unmarshal([]byte(`{"firstName":"Jane","lastName":"Doe","age":30}`), &req))

	assert.Equal(t, AddPersonRequest{FirstName: "Jane", LastName: "Doe", Age: 30}, req)
}

func TestPersonResponseNames(t *testing.T) {
	raw, err := json.Marshal(&Person{ID: "01J", FirstName: "Jane", LastName: "Doe", Age: 30})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"01J","first_name":"Jane","last_name":"Doe","age":30}`, string(raw))
}
