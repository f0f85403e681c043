package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"leaseify/internal/authstore"
	"leaseify/internal/config"
	"leaseify/internal/payments"
	"leaseify/internal/services"
	"leaseify/internal/stores"
	"leaseify/internal/transport"
	"leaseify/internal/workflows"
)

const usage = `Usage: leaseify <command> [flags]

Commands:
  login         store the session credential
  logout        clear the session credential
  whoami        show the current session
  dashboard     show KPI stats (-watch to poll)
  properties    list properties
  property-add  create a property
  property-rm   delete a property
  tenants       list tenants (paginated)
  overdue       list tenants with outstanding balances
  leases        list leases
  lease-assign  assign a lease to a tenant
  my-lease      show the tenant's active lease and next due date
  payments      list payments for a lease
  pay-offline   log an offline payment for a tenant
  pay           start an online payment (hosted checkout)
  maintenance   list maintenance requests
  maint-new     submit a maintenance request (tenant)
  maint-status  update a request's status (landlord)
  tasks         list tasks
  task-add      create a task
  task-toggle   flip a task's completion
  logs          list communication logs (-type to filter)
  applications  list rental applications
  app-status    approve or deny an application
`

// app carries the wired stores and flows; each command is a page over
// them and resets what it used when it finishes.
type app struct {
	cfg  *config.Config
	auth *authstore.Store

	props        *stores.PropertyStore
	leases       *stores.LeaseStore
	myLease      *stores.MyLeaseStore
	payments     *stores.PaymentStore
	maintenance  *stores.MaintenanceStore
	tenants      *stores.TenantStore
	overdue      *stores.OverdueStore
	tasks        *stores.TaskStore
	logs         *stores.LogStore
	applications *stores.ApplicationStore
	dashboard    *stores.DashboardStore

	paymentFlow *workflows.PaymentWorkflow
	leaseFlow   *workflows.LeaseWorkflow
	maintFlow   *workflows.MaintenanceWorkflow
	appFlow     *workflows.ApplicationWorkflow
	checkout    *payments.Checkout
	tenantSvc   services.TenantService
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	auth := authstore.New(cfg.CredentialsPath)
	if err := auth.Load(); err != nil {
		log.Fatalf("Failed to load credentials: %v", err)
	}

	api := transport.New(cfg.APIBaseURL, auth, cfg.HTTPTimeout)

	propertySvc := services.NewPropertyService(api)
	leaseSvc := services.NewLeaseService(api)
	paymentSvc := services.NewPaymentService(api)
	maintenanceSvc := services.NewMaintenanceService(api)
	tenantSvc := services.NewTenantService(api)
	taskSvc := services.NewTaskService(api)
	logSvc := services.NewLogService(api)
	applicationSvc := services.NewApplicationService(api)
	dashboardSvc := services.NewDashboardService(api)

	a := &app{
		cfg:          cfg,
		auth:         auth,
		props:        stores.NewPropertyStore(propertySvc),
		leases:       stores.NewLeaseStore(leaseSvc),
		myLease:      stores.NewMyLeaseStore(leaseSvc),
		payments:     stores.NewPaymentStore(paymentSvc),
		maintenance:  stores.NewMaintenanceStore(maintenanceSvc),
		tenants:      stores.NewTenantStore(tenantSvc),
		overdue:      stores.NewOverdueStore(tenantSvc),
		tasks:        stores.NewTaskStore(taskSvc),
		logs:         stores.NewLogStore(logSvc),
		applications: stores.NewApplicationStore(applicationSvc),
		dashboard:    stores.NewDashboardStore(dashboardSvc),
		checkout:     payments.NewCheckout(paymentSvc, cfg.PaymentPublishableKey),
		tenantSvc:    tenantSvc,
	}
	a.paymentFlow = workflows.NewPaymentWorkflow(a.logs, a.overdue, a.dashboard)
	a.leaseFlow = workflows.NewLeaseWorkflow(a.leases, a.dashboard)
	a.maintFlow = workflows.NewMaintenanceWorkflow(a.maintenance, a.logs, a.dashboard)
	a.appFlow = workflows.NewApplicationWorkflow(a.applications, a.logs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("Error: %s", transport.ErrorMessage(err))
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(args)
	case "logout":
		return a.auth.Clear()
	case "whoami":
		return a.whoami()
	case "dashboard":
		return a.showDashboard(ctx, args)
	case "properties":
		return a.listProperties(ctx)
	case "property-add":
		return a.addProperty(ctx, args)
	case "property-rm":
		return a.removeProperty(ctx, args)
	case "tenants":
		return a.listTenants(ctx, args)
	case "overdue":
		return a.listOverdue(ctx)
	case "leases":
		return a.listLeases(ctx)
	case "lease-assign":
		return a.assignLease(ctx, args)
	case "my-lease":
		return a.showMyLease(ctx)
	case "payments":
		return a.listPayments(ctx, args)
	case "pay-offline":
		return a.payOffline(ctx, args)
	case "pay":
		return a.payOnline(ctx, args)
	case "maintenance":
		return a.listMaintenance(ctx, args)
	case "maint-new":
		return a.newMaintenance(ctx, args)
	case "maint-status":
		return a.maintenanceStatus(ctx, args)
	case "tasks":
		return a.listTasks(ctx)
	case "task-add":
		return a.addTask(ctx, args)
	case "task-toggle":
		return a.toggleTask(ctx, args)
	case "logs":
		return a.listLogs(ctx, args)
	case "applications":
		return a.listApplications(ctx)
	case "app-status":
		return a.applicationStatus(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
