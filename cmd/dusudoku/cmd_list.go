package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmerry/dusudoku/internal/infrastructure/storage"
)

var listPersist string

var commandList = &cobra.Command{
	Use:   "list",
	Short: "List saved puzzles",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	commandList.Flags().StringVar(&listPersist, "persist-path", "./data", "save directory")
	mainCommand.AddCommand(commandList)
}

func runList(cmd *cobra.Command, args []string) error {
	metas, err := storage.NewFS(listPersist).List(cmd.Context())
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("no saved puzzles")
		return nil
	}
	for _, m := range metas {
		created := time.Unix(0, m.CreatedAt).Format(time.DateTime)
		if m.Name != "" {
			fmt.Printf("%s  %-6s  %s  %s\n", m.ID, m.Difficulty, created, m.Name)
		} else {
			fmt.Printf("%s  %-6s  %s\n", m.ID, m.Difficulty, created)
		}
	}
	return nil
}
