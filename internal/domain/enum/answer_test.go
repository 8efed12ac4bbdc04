package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerRoundTrip(t *testing.T) {
	answers := map[string]Answer{
		"q1": AnswerYes,
		"q2": AnswerNo,
		"q3": AnswerNA,
	}

	raw, err := json.Marshal(answers)
	require.NoError(t, err)

	var decoded map[string]Answer
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// "NA" must survive the round trip distinctly from both booleans
	assert.Equal(t, AnswerYes, decoded["q1"])
	assert.Equal(t, AnswerNo, decoded["q2"])
	assert.Equal(t, AnswerNA, decoded["q3"])
}

func TestAnswerWireFormat(t *testing.T) {
	raw, err := json.Marshal(map[string]Answer{"q1": AnswerYes, "q2": AnswerNo, "q3": AnswerNA})
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Equal(t, true, generic["q1"])
	assert.Equal(t, false, generic["q2"])
	assert.Equal(t, "NA", generic["q3"])
}

func TestAnswerRejectsUnknownValues(t *testing.T) {
	var a Answer
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`42`), &a))

	// json-server data written by older clients used lowercase "na"
	require.NoError(t, json.Unmarshal([]byte(`"na"`), &a))
	assert.Equal(t, AnswerNA, a)
}

func TestAnswerIsValid(t *testing.T) {
	assert.True(t, AnswerYes.IsValid())
	assert.True(t, AnswerNA.IsValid())
	assert.False(t, Answer("").IsValid())
	assert.False(t, Answer("unanswered").IsValid())
}
