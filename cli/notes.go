package cli

import (
	"daily-journal/app"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

func newNotesCmd(open opener) *cobra.Command {
	notes := &cobra.Command{
		Use:   "notes",
		Short: "Read and write journal entries",
	}

	notes.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all entries, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, open, func(a *app.App) error {
					list, err := a.Commands.ListNotes(cmd.Context())
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), list)
				})
			},
		},
		&cobra.Command{
			Use:   "get <date>",
			Short: "Print the entry for a date",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, open, func(a *app.App) error {
					note, err := a.Commands.GetNote(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					if note == nil {
						return fmt.Errorf("no entry for %s", args[0])
					}
					return printJSON(cmd.OutOrStdout(), note)
				})
			},
		},
		newNotesSaveCmd(open),
		&cobra.Command{
			Use:   "delete <date>",
			Short: "Delete the entry for a date",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, open, func(a *app.App) error {
					return a.Commands.DeleteNote(cmd.Context(), args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "search <query>",
			Short: "Find entries containing query",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, open, func(a *app.App) error {
					list, err := a.Commands.SearchNotes(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), list)
				})
			},
		},
		&cobra.Command{
			Use:   "stats <date>",
			Short: "Show word count and reading time for an entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, open, func(a *app.App) error {
					stats, err := a.Commands.NoteStats(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), stats)
				})
			},
		},
	)

	return notes
}

func newNotesSaveCmd(open opener) *cobra.Command {
	var (
		date    string
		content string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write an entry; content is read from stdin unless --content is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			if !cmd.Flags().Changed("content") {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				content = string(raw)
			}

			return withApp(cmd, open, func(a *app.App) error {
				note, err := a.Commands.SaveNote(cmd.Context(), date, content)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), note)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "entry date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&content, "content", "", "entry content")
	return cmd
}
