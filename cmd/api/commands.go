package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
)

func newSchemaCommand(env *string) *cobra.Command {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the accounts schema",
	}

	schemaCmd.AddCommand(
		&cobra.Command{
			Use:   "ensure",
			Short: "Create the accounts table if it does not exist",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := bootstrap(cmd.Context(), *env)
				if err != nil {
					return err
				}
				defer shutdown(a)

				if err := a.DB.SchemaManager().EnsureSchema(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
				return nil
			},
		},
		&cobra.Command{
			Use:   "drop",
			Short: "Drop the accounts table",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := bootstrap(cmd.Context(), *env)
				if err != nil {
					return err
				}
				defer shutdown(a)

				if err := a.DB.SchemaManager().DropSchema(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema dropped")
				return nil
			},
		},
	)
	return schemaCmd
}

func newTransferCommand(env *string) *cobra.Command {
	var (
		fromID string
		toID   string
		amount int64
	)

	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move an amount between two accounts in one unit of work",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), *env)
			if err != nil {
				return err
			}
			defer shutdown(a)

			if err := a.TransferUseCase.Transfer(cmd.Context(), fromID, toID, amount); err != nil {
				return err
			}

			from, err := a.AccountUseCase.GetAccount(cmd.Context(), fromID)
			if err != nil {
				return err
			}
			to, err := a.AccountUseCase.GetAccount(cmd.Context(), toID)
			if err != nil {
				return err
			}
			return printAccounts(cmd.OutOrStdout(), []*entity.Account{from, to})
		},
	}

	transferCmd.Flags().StringVar(&fromID, "from", "", "source account ID")
	transferCmd.Flags().StringVar(&toID, "to", "", "target account ID")
	transferCmd.Flags().Int64Var(&amount, "amount", 0, "amount in minor units")
	_ = transferCmd.MarkFlagRequired("from")
	_ = transferCmd.MarkFlagRequired("to")
	_ = transferCmd.MarkFlagRequired("amount")
	return transferCmd
}

func newAccountCommand(env *string) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	var balance int64
	createCmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), *env)
			if err != nil {
				return err
			}
			defer shutdown(a)

			account, err := a.AccountUseCase.CreateAccount(cmd.Context(), args[0], balance)
			if err != nil {
				return err
			}
			return printAccounts(cmd.OutOrStdout(), []*entity.Account{account})
		},
	}
	createCmd.Flags().Int64Var(&balance, "balance", 0, "initial balance in minor units")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), *env)
			if err != nil {
				return err
			}
			defer shutdown(a)

			account, err := a.AccountUseCase.GetAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printAccounts(cmd.OutOrStdout(), []*entity.Account{account})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), *env)
			if err != nil {
				return err
			}
			defer shutdown(a)

			accounts, err := a.AccountUseCase.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			return printAccounts(cmd.OutOrStdout(), accounts)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), *env)
			if err != nil {
				return err
			}
			defer shutdown(a)

			if err := a.AccountUseCase.DeleteAccount(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account %s deleted\n", args[0])
			return nil
		},
	}

	accountCmd.AddCommand(createCmd, getCmd, listCmd, deleteCmd)
	return accountCmd
}

func printAccounts(out io.Writer, accounts []*entity.Account) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBALANCE\tUPDATED")
	for _, account := range accounts {
		fmt.Fprintf(w, "%s\t%d\t%s\n", account.ID, account.Balance(), account.UpdatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
