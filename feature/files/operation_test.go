package files

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperations_RoundTripNames(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 3)

	for _, op := range ops {
		parsed, err := ParseOperation(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
		assert.NotEmpty(t, op.Description(), op.String())
	}
}

func TestParseOperation_Unknown(t *testing.T) {
	for _, name := range []string{"", "delete_file", "READ_FILE", "read_file "} {
		_, err := ParseOperation(name)
		assert.ErrorIs(t, err, ErrUnknownOperation, name)
	}
}

func TestDecodeCall(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		raw     string
		want    Call
		wantErr bool
	}{
		{"Read", OpReadFile, `{"filename":"a.txt"}`, ReadFileArgs{Filename: "a.txt"}, false},
		{"ReadMissingFilename", OpReadFile, `{}`, nil, true},
		{"ReadWrongType", OpReadFile, `{"filename":3}`, nil, true},
		{"Write", OpWriteFile, `{"filename":"a.txt","content":"hi"}`, WriteFileArgs{Filename: "a.txt", Content: "hi"}, false},
		{"WriteEmptyContent", OpWriteFile, `{"filename":"a.txt"}`, WriteFileArgs{Filename: "a.txt"}, false},
		{"WriteNoArgs", OpWriteFile, ``, nil, true},
		{"ListEmpty", OpListFiles, ``, ListFilesArgs{}, false},
		{"ListNull", OpListFiles, `null`, ListFilesArgs{}, false},
		{"ListIgnoresExtra", OpListFiles, `{"prefix":"x"}`, ListFilesArgs{}, false},
		{"Unknown", Operation(99), `{}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := DecodeCall(tt.op, json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, call)
			assert.Equal(t, tt.op, call.Operation())
		})
	}
}

func TestDispatcher_EveryOperationIsHandled(t *testing.T) {
	svc, _ := newTestService(t)
	d := NewDispatcher(svc)
	ctx := context.Background()

	for _, op := range Operations() {
		env := d.Dispatch(ctx, op.String(), json.RawMessage(`{"filename":"probe.txt","content":"x"}`))
		assert.NotContains(t, env.Error, ErrUnknownOperation.Error(), op.String())
	}
}

func TestDispatcher_WriteReadList(t *testing.T) {
	svc, _ := newTestService(t)
	d := NewDispatcher(svc)
	ctx := context.Background()

	w := d.Dispatch(ctx, "write_file", json.RawMessage(`{"filename":"notes.json","content":"{}"}`))
	require.True(t, w.Success, w.Error)
	assert.Equal(t, "application/json", w.Data.(WriteFileData).ContentType)

	r := d.Dispatch(ctx, "read_file", json.RawMessage(`{"filename":"notes.json"}`))
	require.True(t, r.Success)
	assert.Equal(t, "{}", r.Data.(ReadFileData).Content)

	l := d.Dispatch(ctx, "list_files", nil)
	require.True(t, l.Success)
	assert.Equal(t, []string{"notes.json"}, l.Data.(ListFilesData).Files)
}

func TestDispatcher_Rejections(t *testing.T) {
	var seen []Invocation
	svc, _ := newTestService(t, WithObserver(ObserverFunc(func(_ context.Context, inv Invocation) {
		seen = append(seen, inv)
	})))
	d := NewDispatcher(svc)
	ctx := context.Background()

	env := d.Dispatch(ctx, "format_disk", nil)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "unknown operation")
	assert.Equal(t, ErrorKindInvalid, env.Kind())

	env = d.Dispatch(ctx, "read_file", json.RawMessage(`not json`))
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "invalid arguments for read_file")

	require.Len(t, seen, 2)
	assert.Equal(t, "unknown", seen[0].Operation)
	assert.Equal(t, "read_file", seen[1].Operation)
	assert.Equal(t, ErrorKindInvalid, seen[1].ErrorKind)
}

func TestDispatcher_Execute(t *testing.T) {
	svc, _ := newTestService(t)
	d := NewDispatcher(svc)

	env := d.Execute(context.Background(), ReadFileArgs{Filename: "missing.txt"})
	assert.False(t, env.Success)
	assert.Equal(t, "File 'missing.txt' not found", env.Error)
}
