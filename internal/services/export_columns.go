package services

import (
	"fleet-admin/internal/export"
	"fleet-admin/internal/models"
)

func accountColumns(dates export.Formatter) []export.Column {
	return []export.Column{
		{Header: "S.No", Key: "serial", Width: 8, Format: export.Serial()},
		{Header: "Account ID", Key: "account_id", Width: 12},
		{Header: "Account Name", Key: "account_name", Width: 30},
		{Header: "Account Number", Key: "account_number", Width: 18},
		{Header: "Legacy Account Number", Key: "legacy_account_number", Width: 22},
		{Header: "Account Type", Key: "account_type", Width: 16},
		{Header: "Parent Account ID", Key: "parent_account_id", Width: 18},
		{Header: "Status", Key: "status", Width: 12},
		{Header: "Number of Users", Key: "number_of_users", Width: 16},
		{Header: "Deleted", Key: "is_deleted", Width: 10, Format: export.Boolean()},
		{Header: "Created At", Key: "created_at", Width: 24, Format: dates},
	}
}

func accountRows(accounts []models.Account) []export.Row {
	rows := make([]export.Row, 0, len(accounts))
	for i := range accounts {
		a := &accounts[i]
		rows = append(rows, export.Row{
			"account_id":            a.AccountID,
			"account_name":          a.AccountName,
			"account_number":        optional(a.AccountNumber),
			"legacy_account_number": optional(a.LegacyAccountNumber),
			"account_type":          optional(a.AccountType),
			"parent_account_id":     a.ParentAccountID,
			"status":                a.Status,
			"number_of_users":       a.NumberOfUsers,
			"is_deleted":            a.IsDeleted,
			"created_at":            a.CreatedAt,
		})
	}
	return rows
}

func userColumns(dates export.Formatter) []export.Column {
	return []export.Column{
		{Header: "S.No", Key: "serial", Width: 8, Format: export.Serial()},
		{Header: "User ID", Key: "user_id", Width: 10},
		{Header: "First Name", Key: "first_name", Width: 18},
		{Header: "Last Name", Key: "last_name", Width: 18},
		{Header: "Email", Key: "email", Width: 32},
		{Header: "Phone Number", Key: "phone_number", Width: 18},
		{Header: "Designation", Key: "designation", Width: 20},
		{Header: "Role", Key: "role", Width: 16},
		{Header: "Status", Key: "status", Width: 12},
		{Header: "Customer User", Key: "is_customer_user", Width: 14, Format: export.Boolean()},
		{Header: "Created At", Key: "created_at", Width: 24, Format: dates},
	}
}

func contactColumns() []export.Column {
	return []export.Column{
		{Header: "S.No", Key: "serial", Width: 8, Format: export.Serial()},
		{Header: "Name", Key: "full_name", Width: 28},
		{Header: "Email", Key: "email", Width: 32},
		{Header: "Phone Number", Key: "phone_number", Width: 18},
		{Header: "Designation", Key: "designation", Width: 20},
		{Header: "Status", Key: "status", Width: 12},
	}
}

func userRows(users []models.User) []export.Row {
	rows := make([]export.Row, 0, len(users))
	for i := range users {
		u := &users[i]
		rows = append(rows, export.Row{
			"user_id":          u.UserID,
			"first_name":       u.FirstName,
			"last_name":        u.LastName,
			"full_name":        u.FullName(),
			"email":            u.Email,
			"phone_number":     optional(u.PhoneNumber),
			"designation":      optional(u.Designation),
			"role":             optional(u.RoleName()),
			"status":           u.Status,
			"is_customer_user": u.IsCustomerUser,
			"created_at":       u.CreatedAt,
		})
	}
	return rows
}

func customerColumns(dates export.Formatter) []export.Column {
	return []export.Column{
		{Header: "S.No", Key: "serial", Width: 8, Format: export.Serial()},
		{Header: "Customer ID", Key: "customer_id", Width: 12},
		{Header: "Customer Name", Key: "customer_name", Width: 30},
		{Header: "Customer Class", Key: "customer_class", Width: 16},
		{Header: "Reference Number", Key: "reference_number", Width: 18},
		{Header: "Status", Key: "status", Width: 12},
		{Header: "Created At", Key: "created_at", Width: 24, Format: dates},
	}
}

func customerRows(customers []models.Customer) []export.Row {
	rows := make([]export.Row, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		rows = append(rows, export.Row{
			"customer_id":      c.CustomerID,
			"customer_name":    c.CustomerName,
			"customer_class":   optional(c.CustomerClass),
			"reference_number": optional(c.ReferenceNumber),
			"status":           c.Status,
			"created_at":       c.CreatedAt,
		})
	}
	return rows
}

// optional maps a blank column to nil so it renders as N/A
func optional(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
