package files

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_MarshalSuccess(t *testing.T) {
	env := Succeed(ReadFileData{Filename: "report.txt", Content: "Q1 summary", Size: 10})

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"filename":"report.txt","content":"Q1 summary","size":10}`, string(raw))
}

func TestEnvelope_MarshalFailure(t *testing.T) {
	env := Fail("File 'x.txt' not found")
	env.Data = ReadFileData{Filename: "x.txt"}

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"File 'x.txt' not found"}`, string(raw))
}

func TestEnvelope_MarshalEmptyList(t *testing.T) {
	raw, err := json.Marshal(Succeed(ListFilesData{Files: []string{}, Count: 0}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"files":[],"count":0}`, string(raw))
}

func TestEnvelope_PayloadCannotOverrideSuccess(t *testing.T) {
	raw, err := json.Marshal(Succeed(map[string]any{"success": false, "error": "x"}))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, true, out["success"])
}

func TestEnvelope_NonObjectPayload(t *testing.T) {
	_, err := json.Marshal(Succeed([]string{"a"}))
	assert.Error(t, err)
}

func TestFail_DefaultsMessage(t *testing.T) {
	env := Fail("")
	assert.False(t, env.Success)
	assert.Equal(t, "unknown error", env.Error)
}

func TestFileDetail_OmitsUnknownMetadata(t *testing.T) {
	raw, err := json.Marshal(FileDetail{Name: "a.txt"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a.txt"}`, string(raw))
}
