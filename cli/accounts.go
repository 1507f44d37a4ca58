package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/reportdeck/admin"
	"github.com/lixenwraith/reportdeck/avatar"
	"github.com/lixenwraith/reportdeck/store"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with sample report entries and accounts",
		Args:  cobra.NoArgs,
		RunE:  SeedHandler,
	}
	cmd.Flags().Int("days", 90, "Days of entries to generate, ending today")
	cmd.Flags().Int64("seed", 1, "Random seed")
	cmd.Flags().Bool("accounts", true, "Create sample accounts when missing")
	return cmd
}

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE:  AccountsHandler,
	}
}

func newRepairRoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair-role EMAIL ROLE",
		Short: "Set the authorization role of an account",
		Args:  cobra.ExactArgs(2),
		RunE:  RepairRoleHandler,
	}
	cmd.Flags().Bool("dry-run", false, "Report the change without writing it")
	return cmd
}

func newVerifyRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-role EMAIL ROLE",
		Short: "Check that an account holds a role",
		Args:  cobra.ExactArgs(2),
		RunE:  VerifyRoleHandler,
	}
}

func newUploadAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-avatar EMAIL FILE",
		Short: "Store a profile photo for an account",
		Args:  cobra.ExactArgs(2),
		RunE:  UploadAvatarHandler,
	}
}

var sampleAccounts = []struct {
	email, name, role string
}{
	{"admin@example.com", "Administração", admin.RoleAdmin},
	{"editor@example.com", "Edição", admin.RoleEditor},
	{"viewer@example.com", "Leitura", admin.RoleViewer},
}

func SeedHandler(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	days, _ := cmd.Flags().GetInt("days")
	seed, _ := cmd.Flags().GetInt64("seed")
	if days <= 0 {
		return fmt.Errorf("--days must be positive")
	}

	n, err := e.store.Seed(cmd.Context(), time.Now(), days, seed)
	if err != nil {
		return err
	}
	printf(cmd, "seeded %d entries over %d days\n", n, days)

	if withAccounts, _ := cmd.Flags().GetBool("accounts"); !withAccounts {
		return nil
	}
	for _, a := range sampleAccounts {
		_, err := e.store.AccountByEmail(cmd.Context(), a.email)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
		if _, err := e.store.CreateAccount(cmd.Context(), a.email, a.name, a.role); err != nil {
			return err
		}
		printf(cmd, "created %s (%s)\n", a.email, a.role)
	}
	return nil
}

func AccountsHandler(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	accts, err := e.store.Accounts(cmd.Context())
	if err != nil {
		return err
	}

	var data [][]string
	for _, a := range accts {
		photo := "-"
		if a.AvatarID != "" {
			photo = shortID(a.AvatarID)
		}
		data = append(data, []string{a.Email, a.Name, a.Role, photo, a.CreatedAt.Format(time.DateOnly)})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"EMAIL", "NAME", "ROLE", "AVATAR", "CREATED"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
	return nil
}

func RepairRoleHandler(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	res, err := admin.RepairRole(cmd.Context(), e.log, e.store, args[0], args[1], dryRun)
	if err != nil {
		return err
	}
	printf(cmd, "%s\n", res)
	return nil
}

func VerifyRoleHandler(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	res, err := admin.VerifyRole(cmd.Context(), e.store, args[0], args[1])
	if err != nil {
		return err
	}
	printf(cmd, "%s: ok\n", res.Email)
	return nil
}

func UploadAvatarHandler(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	e, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	id, err := avatar.Upload(cmd.Context(), e.store, args[0], data)
	if err != nil {
		return err
	}
	printf(cmd, "%s\n", id)
	return nil
}

// shortID abbreviates an avatar id for display
// Ids written outside this tool may be shorter than a uuid prefix
func shortID(id string) string {
	return id[:min(8, len(id))]
}
