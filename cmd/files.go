package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"file-agent/feature/files"

	"github.com/spf13/cobra"
)

var (
	shareTTL time.Duration
	putFile  string
)

// errOperationFailed marks a command whose envelope reported failure. The
// envelope itself has already been printed.
var errOperationFailed = errors.New("operation failed")

// filesCmd is the parent command for file operations.
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Read, write and list files in storage",
	Long: `Runs file operations directly against the storage bucket.
Every command prints the result envelope as JSON.`,
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFiles(cmd, func(svc *files.Service) files.Envelope {
			return svc.ListFiles(cmd.Context())
		})
	},
}

var catCmd = &cobra.Command{
	Use:   "cat <filename>",
	Short: "Print the content of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFiles(cmd, func(svc *files.Service) files.Envelope {
			return svc.ReadFile(cmd.Context(), args[0])
		})
	},
}

var putCmd = &cobra.Command{
	Use:   "put <filename> [content]",
	Short: "Write a file",
	Long: `Writes content to a file, replacing it if it exists.
Content comes from the second argument, from --file, or from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := putContent(cmd, args)
		if err != nil {
			return err
		}
		return withFiles(cmd, func(svc *files.Service) files.Envelope {
			return svc.WriteFile(cmd.Context(), args[0], content)
		})
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <filename>",
	Short: "Delete a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFiles(cmd, func(svc *files.Service) files.Envelope {
			return svc.DeleteFile(cmd.Context(), args[0])
		})
	},
}

var statCmd = &cobra.Command{
	Use:   "stat <filename>",
	Short: "Show file metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFiles(cmd, func(svc *files.Service) files.Envelope {
			return svc.StatFile(cmd.Context(), args[0])
		})
	},
}

var urlCmd = &cobra.Command{
	Use:   "url <filename>",
	Short: "Print a presigned download URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFiles(cmd, func(svc *files.Service) files.Envelope {
			return svc.ShareFile(cmd.Context(), args[0], shareTTL)
		})
	},
}

var callCmd = &cobra.Command{
	Use:   "call <tool> [arguments-json]",
	Short: "Invoke a tool by name",
	Long: `Invokes read_file, write_file or list_files the way the agent does.

Examples:
  files call list_files
  files call write_file '{"filename":"hello.txt","content":"Hello World"}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw json.RawMessage
		if len(args) == 2 {
			raw = json.RawMessage(args[1])
		}
		return withFiles(cmd, func(svc *files.Service) files.Envelope {
			return files.NewDispatcher(svc).Dispatch(cmd.Context(), args[0], raw)
		})
	},
}

func init() {
	RootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(lsCmd, catCmd, putCmd, rmCmd, statCmd, urlCmd, callCmd)

	putCmd.Flags().StringVarP(&putFile, "file", "f", "", "Read content from a local file")
	urlCmd.Flags().DurationVar(&shareTTL, "ttl", 0, "URL lifetime (default from STORAGE_PRESIGN_TTL_SECONDS)")
}

func putContent(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) == 2:
		return args[1], nil
	case putFile != "":
		data, err := os.ReadFile(putFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", putFile, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}

// withFiles bootstraps the tool layer, runs op and prints its envelope.
func withFiles(cmd *cobra.Command, op func(svc *files.Service) files.Envelope) error {
	rt, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	return printEnvelope(cmd.OutOrStdout(), op(rt.fileService()))
}

func printEnvelope(w io.Writer, env files.Envelope) error {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(w, string(out))
	if !env.Success {
		return errOperationFailed
	}
	return nil
}
