package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitValues(t *testing.T) {
	assert.Equal(t, 0, Diamonds.Value())
	assert.Equal(t, 1, Spades.Value())
	assert.Equal(t, 2, Hearts.Value())
	assert.Equal(t, 3, Clubs.Value())
	assert.False(t, SuitNone.Valid())
}

func TestNewCardRejectsUnknownCombinations(t *testing.T) {
	_, err := NewCard(Joker, Hearts)
	assert.ErrorIs(t, err, ErrInvalidCard)
	_, err = NewCard(Ace, SuitNone)
	assert.ErrorIs(t, err, ErrInvalidCard)
	_, err = NewCard(RankNone, Clubs)
	assert.ErrorIs(t, err, ErrInvalidCard)

	c, err := NewCard(Ten, Spades)
	require.NoError(t, err)
	assert.Equal(t, "10S", c.String())
}

func TestCardJSON(t *testing.T) {
	b, err := json.Marshal(MustCard(Ten, Hearts))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rank":"10","suit":"H"}`, string(b))

	b, err = json.Marshal(JokerCard)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rank":"Joker","suit":null}`, string(b))

	var c Card
	require.NoError(t, json.Unmarshal([]byte(`{"rank":"Q","suit":"C"}`), &c))
	assert.Equal(t, MustCard(Queen, Clubs), c)

	require.NoError(t, json.Unmarshal([]byte(`{"rank":"Joker","suit":null}`), &c))
	assert.Equal(t, JokerCard, c)
}

func TestCardJSONRejectsBadInput(t *testing.T) {
	bad := []string{
		`{"rank":"5","suit":"C"}`,
		`{"rank":"A","suit":"X"}`,
		`{"rank":"A"}`,
		`{"rank":"Joker","suit":"H"}`,
		`{"suit":"H"}`,
	}
	for _, in := range bad {
		var c Card
		assert.ErrorIs(t, json.Unmarshal([]byte(in), &c), ErrInvalidCard, in)
	}

	_, err := json.Marshal(Card{})
	assert.Error(t, err)
}
