package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"file-agent/feature/agent"
	"file-agent/feature/files"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxChatLine caps a single pasted message.
const maxChatLine = 16 * 1024 * 1024

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the file agent in the terminal",
	Long: `Starts an interactive conversation. The agent can read, write and list
files while answering. Type 'exit' or 'quit' to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if !rt.cfg.Agent.Enabled() {
			return errors.New("AGENT_API_KEY is not set")
		}

		svc := rt.fileService()
		ag := agent.New(agent.NewClient(rt.cfg.Agent), files.NewDispatcher(svc), rt.cfg.Agent, rt.logger)
		session := ag.NewSession()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File agent ready (model %s, bucket %s). Type 'exit' to quit.\n", ag.Model(), rt.gateway.Bucket())

		return chatLoop(cmd.Context(), cmd.InOrStdin(), out, session.Send, rt.logger)
	},
}

// chatLoop reads one message per line from in and prints each reply to out
// until exit, quit or end of input.
func chatLoop(ctx context.Context, in io.Reader, out io.Writer, send func(context.Context, string) (string, error), logg *zap.Logger) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxChatLine)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		reply, err := send(ctx, message)
		if err != nil {
			logg.Error("Chat failed", zap.Error(err))
			fmt.Fprintf(out, "Agent: I encountered an error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Agent: %s\n", reply)
	}
	fmt.Fprintln(out, "Goodbye!")
	return scanner.Err()
}

func init() {
	RootCmd.AddCommand(chatCmd)
}
