// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/produtix/org-service/internal/identity"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Operate on organizations over the HTTP API",
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations and pending invites for the user",
	Run: func(cmd *cobra.Command, args []string) {
		callAPI(cmd, http.MethodGet, "/api/v0/orgs", nil)
	},
}

var orgCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logoURL, _ := cmd.Flags().GetString("logo-url")
		callAPI(cmd, http.MethodPost, "/api/v0/orgs", map[string]string{
			"name":     args[0],
			"logo_url": logoURL,
		})
	},
}

var orgDeleteCmd = &cobra.Command{
	Use:   "delete <org-id>",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		callAPI(cmd, http.MethodDelete, "/api/v0/orgs/"+args[0], nil)
	},
}

var orgInviteCmd = &cobra.Command{
	Use:   "invite <org-id> <email> <role>",
	Short: "Invite a member to an organization",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		callAPI(cmd, http.MethodPost, "/api/v0/orgs/"+args[0]+"/invites", map[string]string{
			"email": args[1],
			"role":  args[2],
		})
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Resolve or switch the active organization",
}

var sessionGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Resolve the active organization for the user",
	Run: func(cmd *cobra.Command, args []string) {
		callAPI(cmd, http.MethodGet, "/api/v0/session", nil)
	},
}

var sessionSwitchCmd = &cobra.Command{
	Use:   "switch <org-id>",
	Short: "Switch the active organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		callAPI(cmd, http.MethodPut, "/api/v0/session", map[string]string{
			"org_id": args[0],
		})
	},
}

func init() {
	orgCreateCmd.Flags().String("logo-url", "", "Organization logo URL")

	orgCmd.AddCommand(orgListCmd, orgCreateCmd, orgDeleteCmd, orgInviteCmd)
	sessionCmd.AddCommand(sessionGetCmd, sessionSwitchCmd)

	rootCmd.AddCommand(orgCmd, sessionCmd)
}

func callAPI(cmd *cobra.Command, method, path string, body interface{}) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), method, httpEndpoint+path, reader)
	if err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(identity.HeaderName, userID)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}

	if len(out) == 0 {
		cmd.Printf("%s\n", resp.Status)
		return
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, out, "", "  "); err != nil {
		cmd.Printf("%s\n", out)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
}
