package filter

import "fleet-admin/internal/models"

// ForAccounts builds the account listing predicate. Soft-deleted accounts are excluded
// unless IsDeleted overrides it.
func ForAccounts(f models.AccountFilters) Predicate {
	return New().
		Equals("customer_id", f.CustomerID).
		In("account_id", f.AccountIDs).
		Equals("parent_account_id", f.ParentAccountID).
		Contains("account_name", f.AccountName).
		Contains("account_number", f.AccountNumber).
		Contains("legacy_account_number", f.LegacyAccountNumber).
		Contains("account_type", f.AccountType).
		EqualsString("status", f.Status).
		Equals("number_of_users", f.NumberOfUsers).
		DateRange("created_at", f.CreatedFrom, f.CreatedTo).
		SoftDelete("is_deleted", DeletedModeFromRaw(f.IsDeleted)).
		Build()
}

// ForUsers builds the user listing predicate
func ForUsers(f models.UserFilters) Predicate {
	return New().
		Equals("customer_id", f.CustomerID).
		Contains("first_name", f.FirstName).
		Contains("last_name", f.LastName).
		Contains("email", f.Email).
		Contains("phone_number", f.PhoneNumber).
		Contains("designation", f.Designation).
		EqualsString("status", f.Status).
		Equals("user_role_id", f.UserRoleID).
		Bool("is_customer_user", f.IsCustomerUser, false).
		DateRange("created_at", f.CreatedFrom, f.CreatedTo).
		Build()
}

// ForCustomers builds the customer listing predicate
func ForCustomers(f models.CustomerFilters) Predicate {
	return New().
		Contains("customer_name", f.CustomerName).
		Contains("customer_class", f.CustomerClass).
		Contains("reference_number", f.ReferenceNumber).
		EqualsString("status", f.Status).
		DateRange("created_at", f.CreatedFrom, f.CreatedTo).
		SoftDelete("is_deleted", DeletedModeFromRaw(f.IsDeleted)).
		Build()
}

// ForSecondaryContacts builds a predicate over users assigned to any of f.AccountIDs.
// The caller must short-circuit an empty account set; without ids no containment clause is added.
func ForSecondaryContacts(f models.SecondaryContactFilters) Predicate {
	b := New()
	if len(f.AccountIDs) > 0 {
		b.Raw("user_id IN (SELECT user_id FROM user_accounts WHERE account_id IN ?)", f.AccountIDs)
	}
	return b.
		Contains("first_name", f.FirstName).
		Contains("last_name", f.LastName).
		Contains("email", f.Email).
		Contains("designation", f.Designation).
		EqualsString("status", f.Status).
		Contains("phone_number", f.PhoneNumber).
		Build()
}
