package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"os"
	"post_bot/dal"
	"post_bot/logic"
	"post_bot/shared"
	"time"
)

const oneShotTimeout = 30 * time.Minute

var autopilotCmd = &cobra.Command{
	Use:   "autopilot",
	Short: "Unattended scan, generate and publish cycles",
}

var autopilotRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one autopilot cycle for a user right now",
	RunE:  runAutopilotOnce,
}

var (
	autopilotUser     string
	autopilotTestMode bool
)

func init() {
	autopilotRunCmd.Flags().StringVar(&autopilotUser, "user", "", "User to run the cycle for (required)")
	autopilotRunCmd.Flags().BoolVar(&autopilotTestMode, "test", false, "Dry run: go through publishing without posting")
	_ = autopilotRunCmd.MarkFlagRequired("user")
	autopilotCmd.AddCommand(autopilotRunCmd)
	rootCmd.AddCommand(autopilotCmd)
}

func runAutopilotOnce(cmd *cobra.Command, args []string) error {

	cfg := shared.LoadConfig()
	logger = initLogger(cfg)

	var ap logic.IAutopilot
	app := fx.New(
		fx.NopLogger,
		coreProviders(cfg),
		fx.Invoke(func(repo dal.IRepo) { repo.InitUpdateDb() }),
		fx.Populate(&ap),
		fx.ErrorHook(&initErrorHandler{}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), oneShotTimeout)
	defer cancel()

	out, err := ap.RunOnce(ctx, autopilotUser, autopilotTestMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Autopilot run failed: %s\n", logic.UserMessage(err))
		return err
	}
	outJson, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(outJson))
	return nil
}
