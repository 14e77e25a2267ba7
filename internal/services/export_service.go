package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/export"
	"fleet-admin/internal/models"
	"fleet-admin/internal/pagination"
)

// ErrExportTooLarge is returned when a requested page exceeds the configured row cap
var ErrExportTooLarge = errors.New("export page exceeds maximum rows")

const (
	EntityAccounts          = "accounts"
	EntityUsers             = "users"
	EntitySecondaryContacts = "secondary_contacts"
	EntityCustomers         = "customers"
)

// ExportService renders one listing page as a workbook. It reuses the listing services so
// an export always holds exactly the rows of the matching JSON page.
type ExportService struct {
	accounts     AccountServiceInterface
	users        UserServiceInterface
	customers    CustomerServiceInterface
	config       config.ExportConfig
	exportLogger ExportLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	now          func() time.Time
}

// NewExportService creates an export service
func NewExportService(
	accounts AccountServiceInterface,
	users UserServiceInterface,
	customers CustomerServiceInterface,
	cfg config.ExportConfig,
	exportLogger ExportLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *ExportService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.TimestampLayout == "" {
		cfg.TimestampLayout = export.DateLayout
	}
	return &ExportService{
		accounts:     accounts,
		users:        users,
		customers:    customers,
		config:       cfg,
		exportLogger: exportLogger,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock replaces the render clock
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	s.now = now
	return s
}

// exportJob is one page of rows ready to be laid out
type exportJob struct {
	entity  string
	scopeID string
	title   string
	columns []export.Column
	rows    []export.Row
	total   int64
	page    pagination.Params
}

func (s *ExportService) ExportCustomerAccounts(
	ctx context.Context,
	customerID int64,
	scopeRaw string,
	filters models.AccountFilters,
	page pagination.Params,
) (*export.Artifact, error) {
	if err := s.checkSize(ctx, EntityAccounts, page); err != nil {
		return nil, err
	}

	accounts, total, err := s.accounts.ListCustomerAccounts(ctx, customerID, scopeRaw, filters, page)
	if err != nil {
		s.fail(ctx, EntityAccounts, "query", err)
		return nil, err
	}

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		s.fail(ctx, EntityAccounts, "query", err)
		return nil, err
	}

	scopeID := fmt.Sprintf("customer-%d", customerID)
	if scopeRaw != "" {
		scopeID = fmt.Sprintf("customer-%d_%s", customerID, scopeRaw)
	}

	return s.render(ctx, exportJob{
		entity:  EntityAccounts,
		scopeID: scopeID,
		title:   fmt.Sprintf("Accounts - %s", customer.CustomerName),
		columns: accountColumns(s.dates()),
		rows:    accountRows(accounts),
		total:   total,
		page:    page,
	})
}

func (s *ExportService) ExportUserAccounts(
	ctx context.Context,
	caller models.Caller,
	userID int64,
	scopeRaw string,
	filters models.AccountFilters,
	page pagination.Params,
) (*export.Artifact, error) {
	if err := s.checkSize(ctx, EntityAccounts, page); err != nil {
		return nil, err
	}

	accounts, total, err := s.accounts.ListUserAccounts(ctx, caller, userID, scopeRaw, filters, page)
	if err != nil {
		s.fail(ctx, EntityAccounts, "query", err)
		return nil, err
	}

	scopeID := fmt.Sprintf("user-%d", userID)
	if scopeRaw != "" {
		scopeID = fmt.Sprintf("user-%d_%s", userID, scopeRaw)
	}

	return s.render(ctx, exportJob{
		entity:  EntityAccounts,
		scopeID: scopeID,
		title:   fmt.Sprintf("Accounts Assigned to User %d", userID),
		columns: accountColumns(s.dates()),
		rows:    accountRows(accounts),
		total:   total,
		page:    page,
	})
}

func (s *ExportService) ExportCustomerUsers(
	ctx context.Context,
	customerID int64,
	filters models.UserFilters,
	page pagination.Params,
) (*export.Artifact, error) {
	if err := s.checkSize(ctx, EntityUsers, page); err != nil {
		return nil, err
	}

	users, total, err := s.users.ListCustomerUsers(ctx, customerID, filters, page)
	if err != nil {
		s.fail(ctx, EntityUsers, "query", err)
		return nil, err
	}

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		s.fail(ctx, EntityUsers, "query", err)
		return nil, err
	}

	return s.render(ctx, exportJob{
		entity:  EntityUsers,
		scopeID: fmt.Sprintf("customer-%d", customerID),
		title:   fmt.Sprintf("Users - %s", customer.CustomerName),
		columns: userColumns(s.dates()),
		rows:    userRows(users),
		total:   total,
		page:    page,
	})
}

func (s *ExportService) ExportSecondaryContacts(
	ctx context.Context,
	caller models.Caller,
	accountID int64,
	filters models.SecondaryContactFilters,
	page pagination.Params,
) (*export.Artifact, error) {
	if err := s.checkSize(ctx, EntitySecondaryContacts, page); err != nil {
		return nil, err
	}

	contacts, total, err := s.users.ListSecondaryContacts(ctx, caller, accountID, filters, page)
	if err != nil {
		s.fail(ctx, EntitySecondaryContacts, "query", err)
		return nil, err
	}

	return s.render(ctx, exportJob{
		entity:  EntitySecondaryContacts,
		scopeID: fmt.Sprintf("account-%d", accountID),
		title:   fmt.Sprintf("Secondary Contacts - Account %d", accountID),
		columns: contactColumns(),
		rows:    userRows(contacts),
		total:   total,
		page:    page,
	})
}

func (s *ExportService) ExportCustomers(
	ctx context.Context,
	filters models.CustomerFilters,
	page pagination.Params,
) (*export.Artifact, error) {
	if err := s.checkSize(ctx, EntityCustomers, page); err != nil {
		return nil, err
	}

	customers, total, err := s.customers.ListCustomers(ctx, filters, page)
	if err != nil {
		s.fail(ctx, EntityCustomers, "query", err)
		return nil, err
	}

	return s.render(ctx, exportJob{
		entity:  EntityCustomers,
		scopeID: "all",
		title:   "Customers",
		columns: customerColumns(s.dates()),
		rows:    customerRows(customers),
		total:   total,
		page:    page,
	})
}

func (s *ExportService) render(ctx context.Context, job exportJob) (*export.Artifact, error) {
	started := s.now()
	meta := job.page.Meta(job.total)
	renderedAt := started.In(s.config.Location).Format(s.config.TimestampLayout)

	wb, err := export.Build(export.Sheet{
		Name:     job.entity,
		Title:    job.title,
		Subtitle: export.PageSubtitle(meta, job.page.Skip, renderedAt),
		Columns:  job.columns,
		Rows:     job.rows,
		Skip:     job.page.Skip,
	})
	if err != nil {
		s.logger.Error("failed to build workbook", "entity", job.entity, "error", err)
		s.fail(ctx, job.entity, "render", err)
		return nil, fmt.Errorf("failed to build %s workbook: %w", job.entity, err)
	}

	filename := export.Filename(job.entity, job.scopeID, meta.Page, meta.TotalPages, started)
	elapsed := s.now().Sub(started)

	tags := map[string]string{"entity": job.entity}
	s.metrics.IncrementCounter("export_generated", tags)
	s.metrics.RecordProcessingTime("export_duration", elapsed)
	s.metrics.RecordGauge("export_rows", float64(len(job.rows)), tags)
	s.exportLogger.LogExportGenerated(ctx, job.entity, filename, len(job.rows), elapsed.Milliseconds())

	return &export.Artifact{Filename: filename, Workbook: wb}, nil
}

func (s *ExportService) checkSize(ctx context.Context, entity string, page pagination.Params) error {
	if s.config.MaxRows > 0 && page.Take > s.config.MaxRows {
		s.fail(ctx, entity, "too_large", ErrExportTooLarge)
		return ErrExportTooLarge
	}
	return nil
}

func (s *ExportService) fail(ctx context.Context, entity, reason string, err error) {
	s.metrics.IncrementCounter("export_failed", map[string]string{"entity": entity, "reason": reason})
	s.exportLogger.LogExportFailed(ctx, entity, err.Error())
}

func (s *ExportService) dates() export.Formatter {
	return export.DateIn(export.DateLayout, s.config.Location)
}
