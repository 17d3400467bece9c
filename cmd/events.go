package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/saulo-duarte/quizgenie-lambda/internal/events"
	"github.com/saulo-duarte/quizgenie-lambda/internal/gateway"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent generation events and remote/local counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		path, _ := cmd.Flags().GetString("path")

		db, err := connect(cmd)
		if err != nil {
			return err
		}
		repo := events.NewRepository(db)

		recent, err := repo.ListRecent(limit, events.Path(path))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tOPERATION\tPATH\tREASON\tLATENCY\tERROR")
		for _, e := range recent {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%dms\t%s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.Operation, e.Path, e.Reason, e.LatencyMs, e.ErrorMessage)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		for _, op := range []string{gateway.OperationQuestions, gateway.OperationTitle} {
			counts, err := repo.CountByPath(op)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: remote=%d local=%d\n", op, counts[events.PathRemote], counts[events.PathLocal])
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().Int("limit", 20, "Maximum events to list")
	eventsCmd.Flags().String("path", "", "Filter by path: remote or local")
}
