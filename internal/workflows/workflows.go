// Package workflows holds the multi-step page flows: each step is an
// explicit sequential call, mirroring the dispatch chains the pages run
// after a mutation succeeds. There is no hidden event bus; cross-store
// consistency is achieved by refetching every affected store.
package workflows

import (
	"context"
	"fmt"
	"log"

	"leaseify/internal/models"
	"leaseify/internal/stores"
)

// PaymentWorkflow backs the landlord payments page.
type PaymentWorkflow struct {
	logs      *stores.LogStore
	overdue   *stores.OverdueStore
	dashboard *stores.DashboardStore
}

func NewPaymentWorkflow(logs *stores.LogStore, overdue *stores.OverdueStore, dashboard *stores.DashboardStore) *PaymentWorkflow {
	return &PaymentWorkflow{logs: logs, overdue: overdue, dashboard: dashboard}
}

// RecordOfflinePayment logs an offline payment for the selected tenant,
// merging in the tenant's lease reference, then refetches the overdue
// list and the dashboard stats so both reflect the new balance. The
// refetches are best-effort: a failed refresh leaves its own store in
// the error state but does not undo the logged payment.
func (w *PaymentWorkflow) RecordOfflinePayment(ctx context.Context, tenant models.Tenant, amount float64, method, notes string) error {
	message := fmt.Sprintf("Offline payment of $%.2f (%s) recorded for %s", amount, method, tenant.Name)
	if notes != "" {
		message += ": " + notes
	}

	req := &models.CreateLogRequest{
		Type:     models.LogPayment,
		Message:  message,
		TenantID: &tenant.ID,
		Amount:   &amount,
		Method:   method,
	}
	if tenant.LeaseID != nil {
		req.LeaseID = tenant.LeaseID
	}
	if tenant.PropertyID != nil {
		req.PropertyID = tenant.PropertyID
	}

	if err := w.logs.Create(ctx, req); err != nil {
		return err
	}

	if err := w.overdue.Fetch(ctx); err != nil {
		log.Printf("WARN: overdue refresh after payment failed: %v", err)
	}
	if err := w.dashboard.Fetch(ctx); err != nil {
		log.Printf("WARN: dashboard refresh after payment failed: %v", err)
	}
	return nil
}

// LeaseWorkflow backs the assign-lease modal flow.
type LeaseWorkflow struct {
	leases    *stores.LeaseStore
	dashboard *stores.DashboardStore
}

func NewLeaseWorkflow(leases *stores.LeaseStore, dashboard *stores.DashboardStore) *LeaseWorkflow {
	return &LeaseWorkflow{leases: leases, dashboard: dashboard}
}

// Assign creates the lease, then refreshes the dashboard so occupancy
// and income reflect it.
func (w *LeaseWorkflow) Assign(ctx context.Context, req *models.AssignLeaseRequest) error {
	if err := w.leases.Assign(ctx, req); err != nil {
		return err
	}
	if err := w.dashboard.Fetch(ctx); err != nil {
		log.Printf("WARN: dashboard refresh after lease assignment failed: %v", err)
	}
	return nil
}

// logRefreshPageSize is the page the status flows pull when refreshing
// the activity log after a mutation: first page, unfiltered.
const logRefreshPageSize = 20

// MaintenanceWorkflow backs the landlord maintenance page.
type MaintenanceWorkflow struct {
	maintenance *stores.MaintenanceStore
	logs        *stores.LogStore
	dashboard   *stores.DashboardStore
}

func NewMaintenanceWorkflow(maintenance *stores.MaintenanceStore, logs *stores.LogStore, dashboard *stores.DashboardStore) *MaintenanceWorkflow {
	return &MaintenanceWorkflow{maintenance: maintenance, logs: logs, dashboard: dashboard}
}

// SetStatus moves a request through its workflow, then refreshes the
// activity log (the backend records the transition there) and the
// dashboard's pending-maintenance count.
func (w *MaintenanceWorkflow) SetStatus(ctx context.Context, id, status string) error {
	if err := w.maintenance.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	if err := w.logs.Fetch(ctx, 1, logRefreshPageSize, ""); err != nil {
		log.Printf("WARN: log refresh after maintenance update failed: %v", err)
	}
	if err := w.dashboard.Fetch(ctx); err != nil {
		log.Printf("WARN: dashboard refresh after maintenance update failed: %v", err)
	}
	return nil
}

// ApplicationWorkflow backs the landlord applications page.
type ApplicationWorkflow struct {
	applications *stores.ApplicationStore
	logs         *stores.LogStore
}

func NewApplicationWorkflow(applications *stores.ApplicationStore, logs *stores.LogStore) *ApplicationWorkflow {
	return &ApplicationWorkflow{applications: applications, logs: logs}
}

// Decide approves or denies an application, then refreshes the activity
// log so the recorded decision is visible.
func (w *ApplicationWorkflow) Decide(ctx context.Context, id, status string) error {
	if err := w.applications.SetStatus(ctx, id, status); err != nil {
		return err
	}
	if err := w.logs.Fetch(ctx, 1, logRefreshPageSize, ""); err != nil {
		log.Printf("WARN: log refresh after application decision failed: %v", err)
	}
	return nil
}
