package sim

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Records_NullsForDroppedRequest(t *testing.T) {
	// GIVEN one completed and one never-scheduled dropped request
	completed := NewRequest(0, 0, 5, 10)
	completed.Place(2, 2, 15)
	dropped := NewRequest(1, 1, 1, 10)
	dropped.Drop(8)
	h := &History{}
	h.Add(completed, dropped)

	records := h.Records()
	require.Len(t, records, 2)

	// THEN the completed record carries every scheduling field
	rec := records[0]
	assert.Equal(t, 0, rec.ID)
	require.NotNil(t, rec.QueueTime)
	assert.Equal(t, 2.0, *rec.QueueTime)
	require.NotNil(t, rec.BatchSize)
	assert.Equal(t, 2, *rec.BatchSize)
	require.NotNil(t, rec.FinishTime)
	assert.Equal(t, 17.0, *rec.FinishTime)
	assert.Nil(t, rec.DroppedTime)

	// AND the dropped record has null scheduling fields and a drop time
	rec = records[1]
	assert.Equal(t, 1, rec.ID)
	assert.Nil(t, rec.QueueTime)
	assert.Nil(t, rec.BatchSize)
	assert.Nil(t, rec.ExecutionTime)
	assert.Nil(t, rec.FinishTime)
	require.NotNil(t, rec.DroppedTime)
	assert.Equal(t, 8.0, *rec.DroppedTime)
}

func TestHistory_WriteJSON(t *testing.T) {
	completed := NewRequest(0, 0, 5, 10)
	completed.Place(0, 1, 10)
	dropped := NewRequest(1, 0, 1, 10)
	dropped.Drop(4)
	h := &History{}
	h.Add(completed, dropped)

	path := filepath.Join(t.TempDir(), "finished.json")
	require.NoError(t, h.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, 10.0, decoded[0]["finish_time"])
	assert.Nil(t, decoded[0]["dropped_time"])
	assert.Nil(t, decoded[1]["finish_time"])
	assert.Equal(t, 4.0, decoded[1]["dropped_time"])
}

func TestHistory_WriteJSON_BadPath(t *testing.T) {
	h := &History{}
	err := h.WriteJSON(filepath.Join(t.TempDir(), "no", "such", "dir.json"))
	assert.Error(t, err)
}
