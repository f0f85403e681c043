package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"leaseify/internal/jobs"
	"leaseify/internal/models"
	"leaseify/internal/payments"
	"leaseify/internal/rent"
	"leaseify/internal/state"
)

func (a *app) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "bearer token issued at login")
	name := fs.String("name", "", "display name")
	role := fs.String("role", models.RoleLandlord, "landlord or tenant")
	fs.Parse(args)

	if *token == "" {
		return fmt.Errorf("login requires -token")
	}
	return a.auth.Save(models.User{Token: *token, Name: *name, Role: *role})
}

func (a *app) whoami() error {
	user := a.auth.Current()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (%s)\n", user.Name, user.Role)
	if exp, ok := a.auth.TokenExpiry(); ok {
		fmt.Printf("Session expires %s\n", exp.Format(time.RFC1123))
	}
	return nil
}

func (a *app) showDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	watch := fs.Bool("watch", false, "poll for updates")
	interval := fs.Duration("interval", 30*time.Second, "watch poll interval")
	fs.Parse(args)
	defer a.dashboard.Reset()

	if err := a.dashboard.Fetch(ctx); err != nil {
		return err
	}
	a.renderDashboard(a.dashboard.Snapshot())

	if !*watch {
		return nil
	}

	a.dashboard.Subscribe(func(snap state.RecordSnapshot[models.DashboardStats]) {
		if !snap.IsLoading && !snap.IsError {
			a.renderDashboard(snap)
		}
	})
	refresher, err := jobs.NewDashboardRefresher(a.dashboard, *interval)
	if err != nil {
		return err
	}
	refresher.Start()
	defer refresher.Stop()

	<-ctx.Done()
	return nil
}

func (a *app) renderDashboard(snap state.RecordSnapshot[models.DashboardStats]) {
	if snap.Item == nil {
		fmt.Println("No dashboard data.")
		return
	}
	s := snap.Item
	fmt.Printf("Properties: %d (%d occupied, %d vacant, %.0f%% occupancy)\n",
		s.TotalProperties, s.OccupiedProperties, s.VacantProperties, s.OccupancyRate*100)
	fmt.Printf("Tenants: %d   Monthly income: $%.2f   Overdue: $%.2f   Pending maintenance: %d\n",
		s.TotalTenants, s.MonthlyIncome, s.OverdueBalance, s.PendingMaintenance)
	for _, point := range s.RentCollected {
		fmt.Printf("  %s  $%.2f\n", point.Month, point.Amount)
	}
}

func (a *app) listProperties(ctx context.Context) error {
	defer a.props.Reset()
	if err := a.props.Fetch(ctx); err != nil {
		return err
	}
	for _, p := range a.props.Snapshot().Items {
		fmt.Printf("%s  %s, %s, %s  $%.2f/mo  [%s]\n", p.ID, p.Street, p.City, p.State, p.RentAmount, p.Status)
	}
	return nil
}

func (a *app) addProperty(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("property-add", flag.ExitOnError)
	street := fs.String("street", "", "street address")
	city := fs.String("city", "", "city")
	st := fs.String("state", "", "state")
	rent := fs.Float64("rent", 0, "monthly rent")
	fs.Parse(args)
	defer a.props.Reset()

	if err := a.props.Create(ctx, &models.CreatePropertyRequest{
		Street: *street, City: *city, State: *st, RentAmount: *rent,
	}); err != nil {
		return err
	}
	fmt.Println("Property created.")
	return nil
}

func (a *app) removeProperty(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("property-rm", flag.ExitOnError)
	id := fs.String("id", "", "property id")
	fs.Parse(args)
	defer a.props.Reset()

	if err := a.props.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Property deleted.")
	return nil
}

func (a *app) listTenants(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tenants", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	fs.Parse(args)
	defer a.tenants.Reset()

	if err := a.tenants.Fetch(ctx, *page, *limit); err != nil {
		return err
	}
	snap := a.tenants.Snapshot()
	for _, t := range snap.Items {
		fmt.Printf("%s  %s  %s  balance $%.2f\n", t.ID, t.Name, t.Email, t.OutstandingBalance())
	}
	fmt.Printf("Page %d of %d\n", snap.Page, snap.TotalPages)
	return nil
}

func (a *app) listOverdue(ctx context.Context) error {
	defer a.overdue.Reset()
	if err := a.overdue.Fetch(ctx); err != nil {
		return err
	}
	for _, t := range a.overdue.Snapshot().Items {
		fmt.Printf("%s  %s  owes $%.2f\n", t.ID, t.Name, t.OutstandingBalance())
	}
	return nil
}

func (a *app) listLeases(ctx context.Context) error {
	defer a.leases.Reset()
	if err := a.leases.Fetch(ctx); err != nil {
		return err
	}
	for _, l := range a.leases.Snapshot().Items {
		fmt.Printf("%s  property %s  tenant %s  $%.2f/mo  balance $%.2f  %s to %s\n",
			l.ID, l.PropertyID, l.TenantID, l.RentAmount, l.Balance,
			l.StartDate.Format("2006-01-02"), l.EndDate.Format("2006-01-02"))
	}
	return nil
}

func (a *app) assignLease(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lease-assign", flag.ExitOnError)
	propertyID := fs.String("property", "", "property id")
	tenantID := fs.String("tenant", "", "tenant id")
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	amount := fs.Float64("rent", 0, "monthly rent")
	fs.Parse(args)
	defer a.leases.Reset()
	defer a.dashboard.Reset()

	if err := a.leaseFlow.Assign(ctx, &models.AssignLeaseRequest{
		PropertyID: *propertyID,
		TenantID:   *tenantID,
		StartDate:  *start,
		EndDate:    *end,
		RentAmount: *amount,
	}); err != nil {
		return err
	}
	fmt.Println("Lease assigned.")
	return nil
}

func (a *app) showMyLease(ctx context.Context) error {
	defer a.myLease.Reset()
	if err := a.myLease.Fetch(ctx); err != nil {
		return err
	}
	snap := a.myLease.Snapshot()
	if snap.Item == nil {
		fmt.Println("No active lease.")
		return nil
	}
	l := snap.Item
	fmt.Printf("Lease %s  $%.2f/mo  balance $%.2f\n", l.ID, l.RentAmount, l.Balance)
	due := rent.NextDueDate(l.StartDate.Day(), time.Now())
	fmt.Printf("Next rent due %s (%d days)\n", due.Format("Mon, 02 Jan 2006"), rent.DaysUntil(due, time.Now()))
	return nil
}

func (a *app) listPayments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payments", flag.ExitOnError)
	leaseID := fs.String("lease", "", "lease id (landlord); omit as tenant for your own history")
	mine := fs.Bool("mine", false, "show the tenant's own payment history")
	fs.Parse(args)
	defer a.payments.Reset()

	var err error
	if *mine {
		err = a.payments.FetchMine(ctx)
	} else {
		err = a.payments.Fetch(ctx, *leaseID)
	}
	if err != nil {
		return err
	}
	for _, p := range a.payments.Snapshot().Items {
		fmt.Printf("%s  $%.2f  %s  %s  [%s]\n", p.ID, p.Amount, p.Method, p.Date.Format("2006-01-02"), p.Status)
	}
	return nil
}

func (a *app) payOffline(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay-offline", flag.ExitOnError)
	tenantID := fs.String("tenant", "", "tenant id")
	amount := fs.Float64("amount", 0, "payment amount")
	method := fs.String("method", models.MethodCash, "payment method")
	notes := fs.String("notes", "", "optional notes")
	fs.Parse(args)
	defer a.logs.Reset()
	defer a.overdue.Reset()
	defer a.dashboard.Reset()

	tenant, err := a.tenantSvc.Get(ctx, *tenantID)
	if err != nil {
		return err
	}
	if err := a.paymentFlow.RecordOfflinePayment(ctx, *tenant, *amount, *method, *notes); err != nil {
		return err
	}
	fmt.Printf("Payment of $%.2f logged for %s.\n", *amount, tenant.Name)
	return nil
}

func (a *app) payOnline(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ExitOnError)
	leaseID := fs.String("lease", "", "lease id")
	amount := fs.Float64("amount", 0, "payment amount")
	fs.Parse(args)

	intent, err := a.checkout.Start(ctx, *leaseID, *amount)
	if err != nil {
		return err
	}

	listener := payments.NewReturnServer(a.cfg.PaymentReturnAddr)
	if err := listener.Start(); err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		listener.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Open this page to complete your payment:\n  %s\n", intent.CheckoutURL)
	fmt.Println("Waiting for the payment confirmation...")

	result, err := listener.Wait(ctx)
	if err != nil {
		return err
	}
	if result.Succeeded {
		fmt.Println("Payment successful.")
	} else {
		fmt.Println("Payment canceled.")
	}
	return nil
}

func (a *app) listMaintenance(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("maintenance", flag.ExitOnError)
	mine := fs.Bool("mine", false, "show the tenant's own requests")
	fs.Parse(args)
	defer a.maintenance.Reset()

	var err error
	if *mine {
		err = a.maintenance.FetchMine(ctx)
	} else {
		err = a.maintenance.Fetch(ctx)
	}
	if err != nil {
		return err
	}
	for _, m := range a.maintenance.Snapshot().Items {
		fmt.Printf("%s  [%s]  %s  (%s)\n", m.ID, m.Status, m.Description, m.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *app) newMaintenance(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("maint-new", flag.ExitOnError)
	description := fs.String("description", "", "what needs fixing")
	fs.Parse(args)
	defer a.maintenance.Reset()

	if err := a.maintenance.Create(ctx, &models.CreateMaintenanceRequest{Description: *description}); err != nil {
		return err
	}
	fmt.Println("Maintenance request submitted.")
	return nil
}

func (a *app) maintenanceStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("maint-status", flag.ExitOnError)
	id := fs.String("id", "", "request id")
	status := fs.String("status", models.MaintenanceInProgress, "Pending, In Progress, or Completed")
	fs.Parse(args)
	defer a.maintenance.Reset()
	defer a.logs.Reset()
	defer a.dashboard.Reset()

	if err := a.maintFlow.SetStatus(ctx, *id, *status); err != nil {
		return err
	}
	fmt.Println("Status updated.")
	return nil
}

func (a *app) listTasks(ctx context.Context) error {
	defer a.tasks.Reset()
	if err := a.tasks.Fetch(ctx); err != nil {
		return err
	}
	for _, t := range a.tasks.Snapshot().Items {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s\n", mark, t.ID, t.Text)
	}
	return nil
}

func (a *app) addTask(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("task-add", flag.ExitOnError)
	text := fs.String("text", "", "task text")
	fs.Parse(args)
	defer a.tasks.Reset()

	if err := a.tasks.Create(ctx, &models.CreateTaskRequest{Text: *text}); err != nil {
		return err
	}
	fmt.Println("Task added.")
	return nil
}

func (a *app) toggleTask(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("task-toggle", flag.ExitOnError)
	id := fs.String("id", "", "task id")
	fs.Parse(args)
	defer a.tasks.Reset()

	if err := a.tasks.Fetch(ctx); err != nil {
		return err
	}
	for _, t := range a.tasks.Snapshot().Items {
		if t.ID == *id {
			if err := a.tasks.Toggle(ctx, t); err != nil {
				return err
			}
			fmt.Println("Task toggled.")
			return nil
		}
	}
	return fmt.Errorf("no task with id %q", *id)
}

func (a *app) listLogs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("logs", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	logType := fs.String("type", "", "filter by type (Communication, Payment, Maintenance, Lease, System)")
	fs.Parse(args)
	defer a.logs.Reset()

	if err := a.logs.Fetch(ctx, *page, *limit, *logType); err != nil {
		return err
	}
	snap := a.logs.Snapshot()
	for _, entry := range snap.Items {
		fmt.Printf("%s  [%s]  %s: %s\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Type, entry.Actor, entry.Message)
	}
	fmt.Printf("Page %d of %d\n", snap.Page, snap.TotalPages)
	return nil
}

func (a *app) listApplications(ctx context.Context) error {
	defer a.applications.Reset()
	if err := a.applications.Fetch(ctx); err != nil {
		return err
	}
	for _, application := range a.applications.Snapshot().Items {
		fmt.Printf("%s  %s <%s>  [%s]\n", application.ID, application.ApplicantName, application.Email, application.Status)
	}
	return nil
}

func (a *app) applicationStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("app-status", flag.ExitOnError)
	id := fs.String("id", "", "application id")
	status := fs.String("status", "", "Approved or Denied")
	fs.Parse(args)
	defer a.applications.Reset()
	defer a.logs.Reset()

	if err := a.appFlow.Decide(ctx, *id, *status); err != nil {
		return err
	}
	fmt.Println("Application updated.")
	return nil
}
