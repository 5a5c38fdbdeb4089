package cli

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player collection commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersGetCmd())
	cmd.AddCommand(newPlayersCreateCmd())
	cmd.AddCommand(newPlayersUpdateCmd())
	cmd.AddCommand(newPlayersDeleteCmd())
	cmd.AddCommand(newPlayersExportCmd())

	return cmd
}

// listQuery builds the shared pagination query string
func listQuery(page, perPage int, orderBy string) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	if orderBy != "" {
		q.Set("order_by", orderBy)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func newPlayersListCmd() *cobra.Command {
	var page, perPage int
	var orderBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players, paginated",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerList
			if err := client.Get("/v2/players"+listQuery(page, perPage, orderBy), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Records per page (10-100)")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Comma-separated sort fields")

	return cmd
}

func newPlayersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one player record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerDetail
			if err := client.Get("/v2/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// playerFlags registers the shared player record flags
func playerFlags(cmd *cobra.Command, username, pass, email, platform, lastConnection *string, level *int) {
	cmd.Flags().StringVar(username, "username", "", "Username (required)")
	cmd.Flags().StringVar(pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(email, "email", "", "Email (required)")
	cmd.Flags().IntVar(level, "level", 0, "Level (1-100)")
	cmd.Flags().StringVar(platform, "platform", "", "Platform")
	cmd.Flags().StringVar(lastConnection, "last-connection", "", "Last connection date")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("pass")
	_ = cmd.MarkFlagRequired("email")
}

// playerBody builds the JSON write payload from the shared flags
func playerBody(username, pass, email, platform, lastConnection string, level int) map[string]any {
	body := map[string]any{
		"username": username,
		"password": pass,
		"email":    email,
	}
	if level > 0 {
		body["level"] = level
	}
	if platform != "" {
		body["platform"] = platform
	}
	if lastConnection != "" {
		body["last_connection"] = lastConnection
	}
	return body
}

func newPlayersCreateCmd() *cobra.Command {
	var username, pass, email, platform, lastConnection string
	var level int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player (requires the EDITOR role)",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := playerBody(username, pass, email, platform, lastConnection, level)
			if err := client.Post("/v2/players", body, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("player created")
			return nil
		},
	}

	playerFlags(cmd, &username, &pass, &email, &platform, &lastConnection, &level)
	return cmd
}

func newPlayersUpdateCmd() *cobra.Command {
	var username, pass, email, platform, lastConnection string
	var level int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a player record (requires the EDITOR role)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := playerBody(username, pass, email, platform, lastConnection, level)
			if err := client.Post("/v2/players/"+args[0], body, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("player updated")
			return nil
		},
	}

	playerFlags(cmd, &username, &pass, &email, &platform, &lastConnection, &level)
	return cmd
}

func newPlayersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player record (requires the EDITOR role)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/v2/players/"+args[0], nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("player deleted")
			return nil
		},
	}
}

func newPlayersExportCmd() *cobra.Command {
	var page, perPage int
	var orderBy, outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the player table as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.Download("/v2/players.pdf"+listQuery(page, perPage, orderBy), "application/pdf")
			if err != nil {
				return err
			}

			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}

			NewOutput(cfg.Output).PrintMessage("wrote " + outFile)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Records per page (10-100)")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Comma-separated sort fields")
	cmd.Flags().StringVar(&outFile, "out", "players.pdf", "Output file")

	return cmd
}
