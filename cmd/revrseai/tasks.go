package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// tasksCmd lists the account's generation tasks.
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List generation tasks",
	Long: `List all generation tasks owned by the authenticated account,
most useful for finding a task ID to execute or inspect.`,
	RunE: runTasks,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cmd, cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	tasks, err := client.Tasks(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("no tasks")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tCREATED\tTITLE")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status,
			task.CreatedAt.Format("2006-01-02 15:04"),
			task.Title,
		)
	}
	return w.Flush()
}
