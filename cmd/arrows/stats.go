package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lololomus/Arrows-sub000/internal/storage"
)

var flagLimit int

var statsCmd = &cobra.Command{
	Use:   "stats <level>",
	Short: "Show recorded attempts for a level",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of attempts to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	n, err := parseLevelArg(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	attempts, err := store.RecentAttempts(n, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Attempts - Level %d", n)))
	if len(attempts) == 0 {
		fmt.Println("No attempts recorded.")
		return nil
	}

	for _, a := range attempts {
		line := fmt.Sprintf("%s  %-4s  mistakes=%d stars=%d coins=%d time=%ds",
			a.CreatedAt.Format("2006-01-02 15:04"), a.Result, a.Mistakes, a.Stars, a.Coins, a.TimeSeconds)
		if a.Error != "" {
			line += "  (" + a.Error + ")"
		}
		fmt.Println(line)
	}
	return nil
}
