// Package cli implements the terminal dashboard: a thin presentation layer
// over the API client. Every subcommand maps onto one client operation.
package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stockai/stockai-go/config"
	"github.com/stockai/stockai-go/internal/app"
	"github.com/stockai/stockai-go/internal/session"
	"github.com/stockai/stockai-go/models"
	"github.com/stockai/stockai-go/observability"
	"github.com/stockai/stockai-go/services"
)

// deps holds the wired application objects shared by all subcommands.
type deps struct {
	cfg     *config.Config
	store   *session.Store
	client  *services.Client
	session *app.App
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	d := &deps{}

	rootCmd := &cobra.Command{
		Use:   "stockai",
		Short: "StockAI - stock dashboard and ML price predictions",
		Long: `StockAI is a terminal dashboard for the StockAI backend: browse stock
data, request machine-learning price predictions, manage a watchlist, and
chat with the AI investment assistant.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			observability.InitLoggerWithLevel(cfg.Log.Production, observability.ParseLevel(cfg.Log.Level))

			store, err := session.NewStore(cfg.Session.DataDir, cfg.Session.Passphrase)
			if err != nil {
				return fmt.Errorf("failed to open session store: %w", err)
			}

			client := services.NewClientWithTimeout(cfg.API.BaseURL, store,
				time.Duration(cfg.API.TimeoutSeconds)*time.Second)

			d.cfg = cfg
			d.store = store
			d.client = client
			d.session = app.New(cfg, store, client)

			// Verify any stored session before the command runs; a rejected
			// token ends the session locally.
			if err := d.session.Startup(cmd.Context()); err != nil {
				slog.Warn("session bootstrap failed", "error", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newLoginCmd(d))
	rootCmd.AddCommand(newSignupCmd(d))
	rootCmd.AddCommand(newLogoutCmd(d))
	rootCmd.AddCommand(newWhoamiCmd(d))
	rootCmd.AddCommand(newPasswdCmd(d))
	rootCmd.AddCommand(newQuoteCmd(d))
	rootCmd.AddCommand(newSearchCmd(d))
	rootCmd.AddCommand(newSymbolsCmd(d))
	rootCmd.AddCommand(newSectorsCmd(d))
	rootCmd.AddCommand(newPredictCmd(d))
	rootCmd.AddCommand(newPredictionsCmd(d))
	rootCmd.AddCommand(newWatchlistCmd(d))
	rootCmd.AddCommand(newChatCmd(d))
	rootCmd.AddCommand(newHealthCmd(d))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newLoginCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			user, err := d.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Logged in as %s", user.Email))
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newSignupCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			fullName, _ := cmd.Flags().GetString("name")

			user, err := d.session.Signup(cmd.Context(), email, password, fullName)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Account created for %s", user.Email))
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password (at least 6 characters)")
	cmd.Flags().String("name", "", "Full name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the local session",
		Run: func(cmd *cobra.Command, args []string) {
			d.session.Logout()
			printSuccess("Logged out")
		},
	}
}

func newWhoamiCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := d.session.CurrentUser()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			printTitle("Current session")
			fmt.Printf("Email: %s\n", user.Email)
			if user.FullName != "" {
				fmt.Printf("Name:  %s\n", user.FullName)
			}
			fmt.Printf("ID:    %s\n", user.ID)
			return nil
		},
	}
}

func newPasswdCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("new-password")
			msg, err := d.session.UpdatePassword(cmd.Context(), password)
			if err != nil {
				return err
			}
			printSuccess(msg)
			return nil
		},
	}
	cmd.Flags().String("new-password", "", "New password (at least 6 characters)")
	cmd.MarkFlagRequired("new-password")
	return cmd
}

func newQuoteCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote SYMBOL",
		Short: "Show quote and price history for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, _ := cmd.Flags().GetString("period")
			if period == "" {
				period = d.cfg.API.DefaultPeriod
			}
			data, err := d.client.GetStockData(cmd.Context(), args[0], period)
			if err != nil {
				return err
			}
			renderStockData(data)
			return nil
		},
	}
	cmd.Flags().String("period", "", "History period (5d, 1mo, 3mo, 6mo, 1y, 2y, 5y; default from config)")
	return cmd
}

func newSearchCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search stocks by name or ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := d.client.SearchStocks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderSearchResults(results)
			return nil
		},
	}
}

func newSymbolsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List known stock symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			sector, _ := cmd.Flags().GetString("sector")
			search, _ := cmd.Flags().GetString("search")
			symbols, err := d.client.GetSymbols(cmd.Context(), sector, search)
			if err != nil {
				return err
			}
			renderSymbols(symbols)
			return nil
		},
	}
	cmd.Flags().String("sector", "", "Filter by sector")
	cmd.Flags().String("search", "", "Filter by search term")
	return cmd
}

func newSectorsCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "List available sectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			sectors, err := d.client.GetSectors(cmd.Context())
			if err != nil {
				return err
			}
			renderSectors(sectors)
			return nil
		},
	}
}

func newPredictCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict SYMBOL",
		Short: "Request an ML price prediction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, _ := cmd.Flags().GetString("model")
			if model == "" {
				model = d.cfg.API.DefaultModel
			}
			pred, err := d.client.Predict(cmd.Context(), args[0], models.ModelType(model))
			if err != nil {
				return err
			}
			renderPrediction(pred)
			return nil
		},
	}
	cmd.Flags().String("model", "",
		"Model type (SVM, DecisionTree, RandomForest, LSTM; default from config)")
	return cmd
}

func newPredictionsCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "predictions",
		Short: "Show prediction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := d.client.GetPredictionHistory(cmd.Context())
			if err != nil {
				return err
			}
			renderPredictionHistory(records)
			return nil
		},
	}
}

func newWatchlistCmd(d *deps) *cobra.Command {
	watchlistCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage the watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := d.client.GetWatchlist(cmd.Context())
			if err != nil {
				return err
			}
			renderWatchlist(items)
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add SYMBOL",
		Short: "Add a symbol to the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				name = args[0]
			}
			result, err := d.client.AddToWatchlist(cmd.Context(), args[0], name)
			if err != nil {
				if services.IsDuplicate(err) {
					fmt.Printf("%s is already in your watchlist\n", args[0])
					return nil
				}
				return err
			}
			printSuccess(fmt.Sprintf("%s (id %s)", result.Message, result.ID))
			return nil
		},
	}
	addCmd.Flags().String("name", "", "Company name (defaults to the symbol)")

	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a watchlist entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := d.client.RemoveFromWatchlist(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSuccess(msg)
			return nil
		},
	}

	watchlistCmd.AddCommand(addCmd)
	watchlistCmd.AddCommand(removeCmd)
	return watchlistCmd
}

func newChatCmd(d *deps) *cobra.Command {
	chatCmd := &cobra.Command{
		Use:   "chat MESSAGE",
		Short: "Ask the AI investment assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := d.client.SendMessage(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			renderAssistantReply(reply)
			return nil
		},
	}

	chatCmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Show the conversation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := d.client.GetChatHistory(cmd.Context())
			if err != nil {
				return err
			}
			renderChatHistory(messages)
			return nil
		},
	})

	return chatCmd
}

func newHealthCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check backend availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			if !verbose {
				if d.client.CheckHealth(cmd.Context()) {
					printSuccess("Backend is healthy")
				} else {
					printFailure("Backend is unreachable or unhealthy")
				}
				return nil
			}

			report, err := d.client.Health(cmd.Context())
			if err != nil {
				return err
			}
			renderHealthReport(report)

			info, err := d.client.GetDBInfo(cmd.Context())
			if err != nil {
				slog.Debug("db-info unavailable", "error", err)
				return nil
			}
			renderDBInfo(info)
			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Show the full health report")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("StockAI CLI v1.0.0")
		},
	}
}

