package files

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Operation identifies one of the tools exposed to callers.
type Operation int

const (
	OpReadFile Operation = iota + 1
	OpWriteFile
	OpListFiles
)

// ErrUnknownOperation is returned for tool names outside Operations().
var ErrUnknownOperation = errors.New("unknown operation")

// Operations returns every tool in the order they are advertised.
func Operations() []Operation {
	return []Operation{OpReadFile, OpWriteFile, OpListFiles}
}

// String returns the tool name.
func (o Operation) String() string {
	switch o {
	case OpReadFile:
		return "read_file"
	case OpWriteFile:
		return "write_file"
	case OpListFiles:
		return "list_files"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Description is the text advertised to models and API clients.
func (o Operation) Description() string {
	switch o {
	case OpReadFile:
		return "Read the content of a file from storage. Returns the file content as text, or a placeholder for binary files."
	case OpWriteFile:
		return "Write content to a file in storage. Creates the file or overwrites it if it already exists."
	case OpListFiles:
		return "List all files available in storage."
	default:
		return ""
	}
}

// ParseOperation maps a tool name to its Operation.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Call is a decoded tool invocation. The set of implementations is closed.
type Call interface {
	Operation() Operation
	validate() error
}

// ReadFileArgs are the arguments of read_file.
type ReadFileArgs struct {
	Filename string `json:"filename"`
}

// WriteFileArgs are the arguments of write_file.
type WriteFileArgs struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// ListFilesArgs are the arguments of list_files. It takes none.
type ListFilesArgs struct{}

func (ReadFileArgs) Operation() Operation  { return OpReadFile }
func (WriteFileArgs) Operation() Operation { return OpWriteFile }
func (ListFilesArgs) Operation() Operation { return OpListFiles }

func (a ReadFileArgs) validate() error {
	if a.Filename == "" {
		return errors.New("filename is required")
	}
	return nil
}

func (a WriteFileArgs) validate() error {
	if a.Filename == "" {
		return errors.New("filename is required")
	}
	return nil
}

func (ListFilesArgs) validate() error { return nil }

// DecodeCall parses raw JSON arguments for op. Empty or null arguments decode
// as an empty object.
func DecodeCall(op Operation, raw json.RawMessage) (Call, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}

	var call Call
	switch op {
	case OpReadFile:
		var args ReadFileArgs
		if err := json.Unmarshal(trimmed, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments for %s: %w", op, err)
		}
		call = args
	case OpWriteFile:
		var args WriteFileArgs
		if err := json.Unmarshal(trimmed, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments for %s: %w", op, err)
		}
		call = args
	case OpListFiles:
		call = ListFilesArgs{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}

	if err := call.validate(); err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", op, err)
	}
	return call, nil
}

// Dispatcher routes tool invocations by name to the Service.
type Dispatcher struct {
	service *Service
}

// NewDispatcher creates a dispatcher over svc.
func NewDispatcher(svc *Service) *Dispatcher {
	return &Dispatcher{service: svc}
}

// Dispatch decodes and executes the tool called name. Unknown names and bad
// arguments come back as failed envelopes.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw json.RawMessage) Envelope {
	op, err := ParseOperation(name)
	if err != nil {
		return d.reject(ctx, name, "unknown", err)
	}
	call, err := DecodeCall(op, raw)
	if err != nil {
		return d.reject(ctx, name, op.String(), err)
	}
	return d.Execute(ctx, call)
}

// reject reports a call that never reached the service. Unknown names are
// observed under the "unknown" label.
func (d *Dispatcher) reject(ctx context.Context, name, label string, err error) Envelope {
	d.service.logger.Warn("Rejected tool call", zap.String("tool", name), zap.Error(err))
	inv := Invocation{Operation: label, ErrorKind: ErrorKindInvalid}
	return d.service.finish(ctx, inv, time.Now(), Fail(err.Error()))
}

// Execute runs an already decoded call.
func (d *Dispatcher) Execute(ctx context.Context, call Call) Envelope {
	switch c := call.(type) {
	case ReadFileArgs:
		return d.service.ReadFile(ctx, c.Filename)
	case WriteFileArgs:
		return d.service.WriteFile(ctx, c.Filename, c.Content)
	case ListFilesArgs:
		return d.service.ListFiles(ctx)
	default:
		return Fail(fmt.Sprintf("%s: %T", ErrUnknownOperation, call))
	}
}
