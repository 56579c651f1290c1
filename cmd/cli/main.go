package main

import (
	"context"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/findmoney/cmd/cli/board"
	"github.com/myrjola/findmoney/internal/errors"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
	"os/signal"
)

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(board.Group)
	rootCmd.AddCommand(board.Play)
	rootCmd.AddCommand(board.Layout)
}

var rootCmd = &cobra.Command{
	Use:  "findmoney",
	Long: `Find the Money game master for the terminal. Explore rooms and furniture on a seeded board.`,
}

func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(Execute())
}
