package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNewGameDTOCommand(t *testing.T) {
	testCases := []struct {
		query string
		want  string
		err   error
	}{
		{"", "d easy", nil},
		{"difficulty=medium", "d medium", nil},
		{"rows=3&cols=4&mines=2", "n 3 4 2", nil},
		{"rows=3&cols=4&mines=0&seed=1", "n 3 4 0", nil},
		{"rows=3&mines=2", "", ErrMixedParams},
		{"difficulty=easy&mines=2", "", ErrMixedParams},
	}
	for _, test := range testCases {
		q, err := url.ParseQuery(test.query)
		require.NoError(t, err)
		dto, err := ParseCreateNewGameDTO(q)
		require.NoError(t, err, test.query)

		c, err := dto.Command()
		if test.err != nil {
			assert.ErrorIs(t, err, test.err, test.query)
			continue
		}
		require.NoError(t, err, test.query)
		assert.Equal(t, test.want, c.String(), test.query)
	}
}

func TestMoveDTOCommand(t *testing.T) {
	testCases := []struct {
		query string
		want  string
		err   error
	}{
		{"move=open&row=1&col=2", "o 1 2", nil},
		{"move=flag&row=0&col=0", "f 0 0", nil},
		{"move=chord&row=0&col=0", "", ErrBadMove},
	}
	for _, test := range testCases {
		q, err := url.ParseQuery(test.query)
		require.NoError(t, err)
		dto, err := ParseMoveDTO(q)
		require.NoError(t, err, test.query)

		c, err := dto.Command()
		if test.err != nil {
			assert.ErrorIs(t, err, test.err, test.query)
			continue
		}
		require.NoError(t, err, test.query)
		assert.Equal(t, test.want, c.String(), test.query)
	}

	_, err := ParseMoveDTO(url.Values{"move": {"open"}, "row": {"1"}})
	assert.Error(t, err)
}
