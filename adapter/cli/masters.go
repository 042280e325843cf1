package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	mastersCommands "github.com/genbaworks/genba/internal/masters/application/commands"
	"github.com/genbaworks/genba/internal/masters/domain"
)

var mastersCmd = &cobra.Command{
	Use:   "masters",
	Short: "Manage the reference data",
}

var mastersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the reference lists and display settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		masters, err := app.GetMastersHandler.Handle(cmd.Context())
		if err != nil {
			return err
		}

		printEntries := func(title string, entries []domain.Entry) {
			fmt.Printf("\n  %s\n", title)
			fmt.Println("  " + separator(58))
			for _, entry := range entries {
				mark := "✓"
				if !entry.Active {
					mark = "✗"
				}
				fmt.Printf("    %s %s\n", mark, entry.Name)
			}
		}
		printEntries("得意先", masters.Clients)
		printEntries("工種", masters.Categories)
		printEntries("担当者", masters.Managers)

		fmt.Println("\n  表示設定")
		fmt.Println("  " + separator(58))
		fmt.Printf("    通貨書式   %s\n", masters.CurrencyFormat)
		fmt.Printf("    小数点以下 %d 桁\n", masters.DecimalPlaces)
		if len(masters.History) > 0 {
			fmt.Printf("    最終更新   %s\n", masters.History[len(masters.History)-1].Timestamp)
		}
		return nil
	},
}

var mastersAddFlags struct {
	kind string
	name string
}

var mastersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a name to a reference list",
	Long: `Add a client, category or manager.

Examples:
  genba masters add --kind clients --name 西日本建設
  genba masters add --kind managers --name 別所`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		err := app.AddEntryHandler.Handle(cmd.Context(), mastersCommands.AddEntryCommand{
			Kind:   domain.EntryKind(mastersAddFlags.kind),
			Name:   mastersAddFlags.name,
			Active: true,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s に %s を追加しました。\n", mastersAddFlags.kind, mastersAddFlags.name)
		return nil
	},
}

var mastersDisableFlags struct {
	kind   string
	name   string
	enable bool
}

var mastersDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable a reference entry without removing it",
	Long: `Disable a name so new projects stop offering it while stored
rows keep resolving it. Use --enable to turn it back on.

Examples:
  genba masters disable --kind categories --name 型枠
  genba masters disable --kind categories --name 型枠 --enable`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("data directory is not available")
		}

		err := app.SetEntryActiveHandler.Handle(cmd.Context(), mastersCommands.SetEntryActiveCommand{
			Kind:   domain.EntryKind(mastersDisableFlags.kind),
			Name:   mastersDisableFlags.name,
			Active: mastersDisableFlags.enable,
		})
		if err != nil {
			return err
		}
		state := "無効化"
		if mastersDisableFlags.enable {
			state = "有効化"
		}
		fmt.Printf("%s の %s を%sしました。\n", mastersDisableFlags.kind, mastersDisableFlags.name, state)
		return nil
	},
}

func init() {
	mastersAddCmd.Flags().StringVar(&mastersAddFlags.kind, "kind", "", "clients, categories or managers")
	mastersAddCmd.Flags().StringVar(&mastersAddFlags.name, "name", "", "entry name")
	_ = mastersAddCmd.MarkFlagRequired("kind")
	_ = mastersAddCmd.MarkFlagRequired("name")

	mastersDisableCmd.Flags().StringVar(&mastersDisableFlags.kind, "kind", "", "clients, categories or managers")
	mastersDisableCmd.Flags().StringVar(&mastersDisableFlags.name, "name", "", "entry name")
	mastersDisableCmd.Flags().BoolVar(&mastersDisableFlags.enable, "enable", false, "re-enable instead of disabling")
	_ = mastersDisableCmd.MarkFlagRequired("kind")
	_ = mastersDisableCmd.MarkFlagRequired("name")

	mastersCmd.AddCommand(mastersListCmd, mastersAddCmd, mastersDisableCmd)
	rootCmd.AddCommand(mastersCmd)
}
