package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/signature"
	"github.com/powertrack/powertrack/internal/worksheet"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage client billing plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List client plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		defer e.close()
		if err := e.requireManager(); err != nil {
			return err
		}

		plans, err := e.client.ListPlans(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCLIENT\tCYCLE\tVEHICLES\tSTATUS")
		for _, p := range plans {
			status := "inactive"
			if p.IsActive {
				status = "active"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", p.ClientPlanID, p.ClientName, p.BillingCycle, p.VehicleCount, status)
		}
		return w.Flush()
	},
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client plan",
	Long: `Create a client plan. Every plan needs a signature: pass a PNG
file with --signature-file, or --sign-as to render the client's typed
name instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		defer e.close()
		if err := e.requireManager(); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("client-name")
		cycle, _ := cmd.Flags().GetString("billing-cycle")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		sigFile, _ := cmd.Flags().GetString("signature-file")
		signAs, _ := cmd.Flags().GetString("sign-as")

		if name == "" {
			return fmt.Errorf("--client-name is required")
		}

		var sig string
		var err error
		switch {
		case sigFile != "":
			sig, err = signature.FromFile(sigFile)
		case signAs != "":
			sig, err = signature.FromText(signAs)
		default:
			return fmt.Errorf("a signature is required: pass --signature-file or --sign-as")
		}
		if err != nil {
			return fmt.Errorf("capturing signature: %w", err)
		}

		created, err := e.client.CreatePlan(cmd.Context(), api.CreatePlanRequest{
			ClientName:   name,
			BillingCycle: cycle,
			Email:        email,
			Phone:        phone,
			Signature:    sig,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created plan %d for %s\n", created.ClientPlanID, created.ClientName)
		return nil
	},
}

var plansAddVehicleCmd = &cobra.Command{
	Use:   "add-vehicle <plan-id>",
	Short: "Add a vehicle to a client plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		defer e.close()
		if err := e.requireManager(); err != nil {
			return err
		}

		planID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		plate, _ := cmd.Flags().GetString("plate")
		makeModel, _ := cmd.Flags().GetString("make-model")
		categoryID, _ := cmd.Flags().GetInt("category-id")

		plate = worksheet.NormalizePlate(plate)
		if plate == "" {
			return fmt.Errorf("--plate is required")
		}
		if categoryID == 0 {
			return fmt.Errorf("--category-id is required")
		}

		updated, err := e.client.AddPlanVehicle(cmd.Context(), planID, api.AddPlanVehicleRequest{
			Plate:      plate,
			CategoryID: categoryID,
			MakeModel:  makeModel,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Plan %d now covers %d vehicle(s)\n", updated.ClientPlanID, updated.VehicleCount)
		return nil
	},
}

func init() {
	plansCreateCmd.Flags().String("client-name", "", "client name")
	plansCreateCmd.Flags().String("billing-cycle", "weekly", "billing cycle (weekly, monthly, quarterly, yearly)")
	plansCreateCmd.Flags().String("email", "", "contact email")
	plansCreateCmd.Flags().String("phone", "", "contact phone")
	plansCreateCmd.Flags().String("signature-file", "", "path to a PNG signature image")
	plansCreateCmd.Flags().String("sign-as", "", "render the typed client name as the signature")

	plansAddVehicleCmd.Flags().String("plate", "", "vehicle plate")
	plansAddVehicleCmd.Flags().String("make-model", "", "make and model")
	plansAddVehicleCmd.Flags().Int("category-id", 0, "vehicle category id")

	plansCmd.AddCommand(plansListCmd, plansCreateCmd, plansAddVehicleCmd)
	rootCmd.AddCommand(plansCmd)
}
