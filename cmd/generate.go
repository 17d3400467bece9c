package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/container"
	"github.com/saulo-duarte/quizgenie-lambda/internal/gateway"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <content...>",
	Short: "Generate quiz questions from text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, _ := cmd.Flags().GetInt("num")
		types, _ := cmd.Flags().GetStringSlice("types")
		file, _ := cmd.Flags().GetString("file")

		req := generation.Request{
			Content:       strings.Join(args, " "),
			NumQuestions:  num,
			FileReference: file,
		}
		for _, t := range types {
			k := generation.Kind(strings.TrimSpace(t))
			if !k.IsValid() {
				return fmt.Errorf("unknown question type %q", t)
			}
			req.AllowedKinds = append(req.AllowedKinds, k)
		}

		questions, err := newGateway(cmd).GenerateQuestions(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), gateway.QuestionsResponse{Questions: questions})
	},
}

var titleCmd = &cobra.Command{
	Use:   "title <content...>",
	Short: "Derive a quiz title from text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := newGateway(cmd).GetTitle(cmd.Context(), strings.Join(args, " "))
		_, err := fmt.Fprintln(cmd.OutOrStdout(), title)
		return err
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize <content...>",
	Short: "Summarize text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary := newGateway(cmd).Summarize(cmd.Context(), strings.Join(args, " "))
		return printJSON(cmd.OutOrStdout(), summary)
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat <message...>",
	Short: "Ask the study assistant",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply := newGateway(cmd).Chat(cmd.Context(), strings.Join(args, " "))
		_, err := fmt.Fprintln(cmd.OutOrStdout(), reply)
		return err
	},
}

func init() {
	generateCmd.Flags().IntP("num", "n", generation.DefaultNumQuestions, "Number of questions")
	generateCmd.Flags().StringSlice("types", nil, "Allowed kinds: multiple-choice, short-answer, essay")
	generateCmd.Flags().String("file", "", "URL of a file whose content is added to the text")
}

// newGateway builds the gateway without a database. Remote calls go to
// --functions-url when set and run in-process otherwise.
func newGateway(cmd *cobra.Command) *gateway.Gateway {
	cfg := loadConfig(cmd)
	config.Init()
	return container.Build(cfg, nil).GatewayContainer.Gateway
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
