package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"giftdrift/internal/bootstrap"
	"giftdrift/internal/platform/config"
	"giftdrift/internal/stub"
)

func main() {
	// A .env next to the binary or in the cwd can carry GIFTDRIFT_* keys.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "giftdrift",
		Short:         "Swipe-based gift discovery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "giftdrift data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newDiscoverCmd(&dataDir))
	root.AddCommand(newProductsCmd(&dataDir))
	root.AddCommand(newSessionCmd(&dataDir))
	root.AddCommand(newProviderCmd(&dataDir))
	root.AddCommand(newLoginCmd(&dataDir))
	root.AddCommand(newLogoutCmd(&dataDir))
	root.AddCommand(newWhoAmICmd(&dataDir))
	root.AddCommand(newStubCmd())
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".giftdrift"
	}
	return filepath.Join(home, ".giftdrift")
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	var sessionType, category, recipient string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the giftdrift terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app, sessionType, category, recipient)
		},
	}
	cmd.Flags().StringVar(&sessionType, "type", "", "session type: onboarding|discovery|category_exploration|gift_selection")
	cmd.Flags().StringVar(&category, "category", "", "category focus")
	cmd.Flags().StringVar(&recipient, "recipient", "", "target recipient")
	return cmd
}

func newDiscoverCmd(dataDir *string) *cobra.Command {
	var sessionType, category, recipient, swipes string
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Run a headless discovery session from a swipe script",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if swipes == "" {
				return fmt.Errorf("--swipes is required (e.g. r,r,l,u)")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			out, err := app.DiscoveryCLI.Run(context.Background(), sessionType, category, recipient, swipes)
			if err != nil {
				return err
			}
			st := out.State
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s: %d swipes, %d liked, %d passed\n",
				st.SessionID, st.SwipeCount, st.LikeCount, st.DislikeCount)
			if out.Completed && out.Summary != nil && out.Summary.NotePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed, note written to %s\n", out.Summary.NotePath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionType, "type", "", "session type")
	cmd.Flags().StringVar(&category, "category", "", "category focus")
	cmd.Flags().StringVar(&recipient, "recipient", "", "target recipient")
	cmd.Flags().StringVar(&swipes, "swipes", "", "comma-separated swipe script: r,l,u,d")
	return cmd
}

func newProductsCmd(dataDir *string) *cobra.Command {
	products := &cobra.Command{Use: "products", Short: "Inspect the product catalog"}

	var category string
	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			cards, err := app.DiscoveryCLI.Browse(context.Background(), category, limit)
			if err != nil {
				return err
			}
			for _, c := range cards {
				p := c.Product
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-32s %-12s %8s\n",
					p.ID, p.Name, p.Category, p.FormatPrice())
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&category, "category", "", "filter by category")
	listCmd.Flags().IntVar(&limit, "limit", 20, "max products")

	products.AddCommand(listCmd)
	return products
}

func newSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Inspect swipe sessions"}

	var limit int
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent swipes from the local journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			entries, err := app.Journal.History(context.Background(), limit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				sync := "synced"
				if !e.RemoteOK {
					sync = "local-only"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-14s %-10s pos=%-3d %s  %s\n",
					e.At.Format(time.RFC3339), e.SessionID, e.Direction, e.Position, sync, e.ProductID)
			}
			return nil
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", 50, "max entries")

	session.AddCommand(historyCmd)
	return session
}

func newProviderCmd(dataDir *string) *cobra.Command {
	provider := &cobra.Command{Use: "provider", Short: "Manage affiliate providers"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List configured affiliate providers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			providers, err := app.AffiliateCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, p := range providers {
				state := "disabled"
				switch {
				case p.Builtin:
					state = "builtin"
				case p.Enabled:
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-10s %s\n", p.Name, state, p.Version)
			}
			return nil
		},
	}

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check provider binaries, checksums, and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			results, err := app.AffiliateCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			failed := false
			for _, r := range results {
				status := "ok"
				if !r.BinaryReachable || !r.ChecksumValid || !r.LifecycleOK {
					status = "FAIL"
					failed = true
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-4s binary=%t checksum=%t lifecycle=%t",
					r.Name, status, r.BinaryReachable, r.ChecksumValid, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  (%s)", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			if failed {
				return fmt.Errorf("one or more providers failed diagnostics")
			}
			return nil
		},
	}

	provider.AddCommand(listCmd, doctorCmd)
	return provider
}

func newLoginCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Store a platform session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			user, err := app.ProfileCLI.Login(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}
}

func newLogoutCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.ProfileCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoAmICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			user, err := app.ProfileCLI.WhoAmI(context.Background())
			if err != nil {
				return err
			}
			state := "valid until " + user.ExpiresAt.Format(time.RFC3339)
			if user.Expired {
				state = "expired"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", user.Name, user.Email, state)
			return nil
		},
	}
}

func newStubCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Run the local platform API stub",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := stub.NewServer(nil)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stub API listening on %s\n", addr)
			return http.ListenAndServe(addr, server.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8799", "listen address")
	return cmd
}
