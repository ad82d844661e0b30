package agent

import (
	"file-agent/feature/files"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// SystemInstruction is the default system prompt.
const SystemInstruction = `You are a helpful AI assistant with file I/O capabilities.

You have access to three tools:
1. read_file(filename) - Read the contents of a file
2. write_file(filename, content) - Create or write a new file
3. list_files() - List all files in storage

When users ask you to:
- Create, write, or save a file -> use write_file()
- Read, view, or check a file -> use read_file()
- List, show, or check what files exist -> use list_files()

Always be helpful and execute the file operations as requested.
After writing a file, confirm what you created.
When listing files, present them in a user-friendly format.`

func parameters(op files.Operation) jsonschema.Definition {
	switch op {
	case files.OpReadFile:
		return jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"filename": {Type: jsonschema.String, Description: "Name of the file to read (e.g., 'document.txt', 'data.csv')"},
			},
			Required: []string{"filename"},
		}
	case files.OpWriteFile:
		return jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"filename": {Type: jsonschema.String, Description: "Name for the new file (e.g., 'report.txt', 'summary.json')"},
				"content":  {Type: jsonschema.String, Description: "Content to write to the file"},
			},
			Required: []string{"filename", "content"},
		}
	default:
		return jsonschema.Definition{
			Type:       jsonschema.Object,
			Properties: map[string]jsonschema.Definition{},
		}
	}
}

// Tools returns the function tools advertised to the model, one per operation.
func Tools() []openai.Tool {
	ops := files.Operations()
	tools := make([]openai.Tool, 0, len(ops))
	for _, op := range ops {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        op.String(),
				Description: op.Description(),
				Parameters:  parameters(op),
			},
		})
	}
	return tools
}
