package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/priyankdesai/smartshop/internal/assistant"
	"github.com/priyankdesai/smartshop/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the shopping assistant in the terminal",
	Long:  `Starts an interactive terminal session with the shopping assistant. Type "exit" or press Ctrl+C to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		database, store, err := openCatalog(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		provider, model := createProviderFromConfig(cfg)
		asst := assistant.New(session.NewStore(), store, provider, model)

		fmt.Println("SmartShop assistant. Tell me what you're shopping for.")
		fmt.Println()

		var sessionID string
		for {
			prompt := promptui.Prompt{Label: "You"}
			input, err := prompt.Run()
			if err != nil {
				// Ctrl+C or EOF ends the session.
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return nil
				}
				return fmt.Errorf("reading input: %w", err)
			}

			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			if input == "exit" || input == "quit" {
				return nil
			}

			result := asst.ProcessMessage(ctx, sessionID, input)
			sessionID = result.SessionID

			fmt.Println()
			fmt.Println(result.ResponseText)
			printRecommendations(result)
			fmt.Println()

			// Contradictions offer a menu of resolutions; the chosen one
			// feeds back into the conversation as the next message.
			if result.InteractionType == assistant.TypeContradictionResolution && len(result.Options) > 0 {
				sel := promptui.Select{
					Label: "Pick an approach (or Ctrl+C to answer freely)",
					Items: result.Options,
				}
				_, choice, err := sel.Run()
				if err != nil {
					continue
				}
				result = asst.ProcessMessage(ctx, sessionID, choice)
				fmt.Println()
				fmt.Println(result.ResponseText)
				printRecommendations(result)
				fmt.Println()
			}
		}
	},
}

func printRecommendations(result *assistant.TurnResult) {
	for i, rec := range result.Recommendations {
		fmt.Println()
		fmt.Printf("%d. %s  (₹%d, %.1f/5 match, %.0f%% confidence)\n",
			i+1, rec.Product.Name, rec.Product.Price.CurrentPrice, rec.MatchScore, rec.Confidence*100)
		for _, reason := range rec.Reasoning {
			fmt.Printf("   + %s\n", reason)
		}
		for _, tradeOff := range rec.TradeOffs {
			fmt.Printf("   - %s\n", tradeOff)
		}
		for _, highlight := range rec.DealHighlights {
			fmt.Printf("   * %s\n", highlight)
		}
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
