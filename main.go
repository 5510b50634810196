package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hrdesk/pkg/channels"
	"hrdesk/pkg/config"
	"hrdesk/pkg/dialog"
	"hrdesk/pkg/gateway"
	"hrdesk/pkg/handler"
	"hrdesk/pkg/intent"
	"hrdesk/pkg/monitor"
	"hrdesk/pkg/ops"
	"hrdesk/pkg/policy"
	"hrdesk/pkg/report"
	"hrdesk/pkg/store"

	_ "hrdesk/pkg/channels/autoload"
	_ "hrdesk/pkg/intent/autoload"
)

func main() {
	cfg, system, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	monitor.SetupSlog(system.LogLevel)
	monitor.PrintBanner()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recordStore, err := store.Open(cfg.Store.Path)
	if err != nil {
		slog.Error("Failed to open record store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer recordStore.Close()

	policyStore := policy.NewStore(cfg.Policy.Path, system.PolicyTopK)
	if err := policyStore.Load(); err != nil {
		slog.Warn("Policy corpus not loaded, policy questions will find nothing",
			"path", cfg.Policy.Path, "error", err)
	}
	policyStore.WatchReload(ctx)

	renderer := report.NewHTMLRenderer(cfg.Reports.Dir)
	classifier := intent.NewFromConfig(cfg.Classifier, system)

	registry := dialog.NewRegistry()
	if err := registerOperations(registry, recordStore, policyStore, renderer); err != nil {
		slog.Error("Failed to register operations", "error", err)
		os.Exit(1)
	}

	engine := dialog.NewEngine(classifier, registry)
	sessions := dialog.NewManager()
	dialogHandler := handler.NewDialogHandler(engine, sessions, system)

	enabled, err := channels.LoadFromConfig(cfg, system)
	if err != nil {
		slog.Error("Failed to load channels", "error", err)
		os.Exit(1)
	}

	gw, err := gateway.NewGatewayBuilder().
		WithMonitor(monitor.NewCLIMonitor()).
		WithChannel(enabled...).
		WithHandler(dialogHandler).
		Build()
	if err != nil {
		slog.Error("Failed to build gateway", "error", err)
		os.Exit(1)
	}

	slog.Info("hrdesk is running", "operations", len(registry.Names()), "channels", len(enabled))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	slog.Info("Shutting down")
	cancel()
	gw.StopAll()
}

// registerOperations wires every conversational operation: which fields it
// collects and which service call runs once they are complete.
func registerOperations(reg *dialog.Registry, rs ops.RecordStore, ps ops.PolicySearcher, renderer report.Renderer) error {
	employees := ops.NewEmployeeService(rs)
	attendance := ops.NewAttendanceService(rs)
	reports := ops.NewReportService(rs, renderer)
	policies := ops.NewPolicyService(ps)

	descriptors := []*dialog.Descriptor{
		{Name: intent.OpGreeting, Handler: ops.Greeting},
		{Name: intent.OpHelp, Handler: ops.Help},
		{
			Name:     intent.OpRegisterEmployee,
			Required: []string{intent.FieldName, intent.FieldEmail, intent.FieldDepartment},
			Handler:  employees.Register,
		},
		{
			Name:     intent.OpFindEmployee,
			Optional: []string{intent.FieldEmployeeID, intent.FieldName},
			// Lookup needs an ID or a name, not both.
			MissingFunc: func(fields map[string]string) []string {
				if strings.TrimSpace(fields[intent.FieldEmployeeID]) != "" ||
					strings.TrimSpace(fields[intent.FieldName]) != "" {
					return nil
				}
				return []string{intent.FieldName}
			},
			Prompt:  "Please provide an employee ID or a name.",
			Handler: employees.Find,
		},
		{
			Name: intent.OpAssignWorkingHours,
			Required: []string{
				intent.FieldEmployeeID, intent.FieldDate,
				intent.FieldStartTime, intent.FieldEndTime,
			},
			Handler: attendance.Assign,
		},
		{
			Name:     intent.OpAttendanceInfo,
			Required: []string{intent.FieldEmployeeID, intent.FieldDate},
			Handler:  attendance.Info,
		},
		{
			Name:     intent.OpDailyReport,
			Required: []string{intent.FieldEmployeeID},
			Optional: []string{intent.FieldDate},
			Handler:  reports.Daily,
		},
		{
			Name:     intent.OpHRPolicy,
			Required: []string{intent.FieldQuery},
			Handler:  policies.Lookup,
		},
	}
	for _, d := range descriptors {
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}
