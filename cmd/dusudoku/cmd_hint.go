package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmerry/dusudoku/internal/domain"
	"github.com/rmerry/dusudoku/internal/hint"
	"github.com/rmerry/dusudoku/internal/render"
	"github.com/rmerry/dusudoku/internal/validator"
)

var commandHint = &cobra.Command{
	Use:   "hint <puzzle>",
	Short: "Suggest the next logical placement for a puzzle",
	Args:  cobra.ExactArgs(1),
	RunE:  runHint,
}

func init() {
	mainCommand.AddCommand(commandHint)
}

func runHint(cmd *cobra.Command, args []string) error {
	st, err := validator.New().Parse(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	h, found, err := hint.NewSingles().Hint(cmd.Context(), st, domain.StrategySingles)
	if err != nil {
		return err
	}
	fmt.Println(render.Boxed(st.Grid))
	if !found {
		fmt.Println("no hint available")
		return nil
	}
	fmt.Printf("%s (row %d, column %d)\n", h.Message, h.Cells[0].Row+1, h.Cells[0].Col+1)
	return nil
}
